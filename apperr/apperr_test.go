package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("Title is required"), http.StatusBadRequest},
		{Unauthorized("not authorized"), http.StatusForbidden},
		{NotFound("post not found"), http.StatusNotFound},
		{Conflict("username is already taken"), http.StatusConflict},
		{Internal("boom", errors.New("driver failure")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.want {
			t.Errorf("kind %d: Status() = %d, want %d", tc.err.Kind, got, tc.want)
		}
	}
}

func TestValidationCarriesAllFields(t *testing.T) {
	err := Validation("Name is required", "Password must be at least 6 characters")
	if len(err.Fields) != 2 {
		t.Fatalf("Fields = %d entries, want 2", len(err.Fields))
	}
	msg := err.Error()
	if msg != "validation failed: Name is required; Password must be at least 6 characters" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestFromPassesTypedErrorsThrough(t *testing.T) {
	orig := NotFound("user not found")
	got := From(fmt.Errorf("wrapped: %w", orig))
	if got != orig {
		t.Errorf("From did not unwrap to the original typed error")
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection refused")
	got := From(cause)
	if got.Kind != KindInternal {
		t.Errorf("Kind = %d, want KindInternal", got.Kind)
	}
	if got.Message != "internal server error" {
		t.Errorf("Message = %q, driver detail must not leak", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("cause must remain reachable via errors.Is for logging")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", Conflict("username is already taken"))
	if !IsKind(err, KindConflict) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind must not match a different kind")
	}
	if IsKind(errors.New("plain"), KindInternal) {
		t.Error("IsKind must be false for untyped errors")
	}
}
