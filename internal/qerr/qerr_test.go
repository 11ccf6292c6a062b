package qerr

import (
	"errors"
	"testing"
)

var errSentinel = errors.New("underlying cause")

func TestUnwrapReachesSentinel(t *testing.T) {
	e := New(KindFormat, errSentinel)
	if !errors.Is(e, errSentinel) {
		t.Fatalf("errors.Is should reach the wrapped sentinel")
	}
}

func TestNewfHasNoCause(t *testing.T) {
	e := Newf(KindInvalidParameter, "alpha must be > 1, got %v", 0.5)
	if e.Cause != nil {
		t.Fatalf("Newf should not set Cause")
	}
	if e.Error() == "" {
		t.Fatalf("Error() should not be empty")
	}
}

func TestKindString(t *testing.T) {
	if KindOutOfMemory.String() != "out of memory" {
		t.Fatalf("String() = %q", KindOutOfMemory.String())
	}
}
