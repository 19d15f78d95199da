package kfmt

import (
	"io"
	"testing"
)

func TestRingBufferEmptyRead(t *testing.T) {
	var rb ringBuffer

	buf := make([]byte, 16)
	if n, err := rb.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("expected (0, io.EOF) reading an empty buffer; got (%d, %v)", n, err)
	}
}

func TestRingBufferWriteThenRead(t *testing.T) {
	var rb ringBuffer

	payload := []byte("initial context record")
	if n, err := rb.Write(payload); n != len(payload) || err != nil {
		t.Fatalf("expected (%d, nil) from Write; got (%d, %v)", len(payload), n, err)
	}

	got, err := io.ReadAll(&rb)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected to read back %q; got %q", payload, got)
	}
}

func TestRingBufferOverwritesOldestData(t *testing.T) {
	var rb ringBuffer

	payload := make([]byte, ringBufferSize)
	for i := range payload {
		payload[i] = byte(i)
	}
	rb.Write(payload)

	// Filling the buffer exactly sacrifices the oldest byte to keep the
	// read and write indices distinguishable.
	got, err := io.ReadAll(&rb)
	if err != nil {
		t.Fatal(err)
	}

	if exp := ringBufferSize - 1; len(got) != exp {
		t.Fatalf("expected to read %d bytes after wrap-around; got %d", exp, len(got))
	}

	for i, b := range got {
		if exp := payload[i+1]; b != exp {
			t.Fatalf("expected byte %d to be 0x%x; got 0x%x", i, exp, b)
		}
	}
}
