package shared

import (
	"bytes"
	"testing"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, 6)) {
		t.Errorf("expected all zeros, got %v", b)
	}
}

func TestWipeByteArrayNil(t *testing.T) {
	WipeByteArray(nil)
}
