package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsFindsWrappedError(t *testing.T) {
	base := Newf(http.StatusBadRequest, "missing_name", "Missing name parameter.")
	wrapped := fmt.Errorf("create lecture: %w", base)

	ae, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected apierr in chain")
	}
	if ae.Status != http.StatusBadRequest || ae.Code != "missing_name" {
		t.Fatalf("unexpected error: status=%d code=%q", ae.Status, ae.Code)
	}
	if ae.Error() != "Missing name parameter." {
		t.Fatalf("unexpected message: got=%q", ae.Error())
	}
}

func TestAsIgnoresPlainErrors(t *testing.T) {
	if _, ok := As(errors.New("boom")); ok {
		t.Fatalf("plain error should not match")
	}
}

func TestErrorFallsBackToCode(t *testing.T) {
	if got := New(http.StatusNotFound, "lecture_not_found", nil).Error(); got != "lecture_not_found" {
		t.Fatalf("unexpected message: got=%q", got)
	}
}
