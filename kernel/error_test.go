package kernel

import "testing"

func TestErrorInterface(t *testing.T) {
	err := &Error{Module: "test", Message: "something went wrong"}

	if exp, got := "something went wrong", err.Error(); exp != got {
		t.Fatalf("expected Error() to return %q; got %q", exp, got)
	}

	// Error values must be usable through the standard error interface.
	var iface error = err
	if iface.Error() != err.Message {
		t.Fatal("expected error interface to surface the original message")
	}
}
