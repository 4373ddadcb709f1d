package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if e.Error() != "ORDER_NOT_FOUND: Order not found" || e.Unwrap() != nil {
			t.Fatalf("unexpected error %q", e.Error())
		}
		if got := e.ToHTTPError(); got != (HTTPError{Code: "ORDER_NOT_FOUND", Message: "Order not found"}) {
			t.Fatalf("unexpected http error %+v", got)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("quota exceeded")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into the response")
		}
	})
}
