package usecase

import (
	"regexp"
	"testing"
	"time"
)

func TestIdentifiers(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	t.Run("order id", func(t *testing.T) {
		id := newOrderID(now)
		if !regexp.MustCompile(`^ORDMOZKNOW0[0-9A-Z]{6}$`).MatchString(id) {
			t.Fatalf("unexpected order id %q", id)
		}
	})

	t.Run("event and session ids", func(t *testing.T) {
		ev := newEventID(now)
		ses := newSessionID(now)
		if !regexp.MustCompile(`^EVT1778405400000[0-9a-z]{6}$`).MatchString(ev) {
			t.Fatalf("unexpected event id %q", ev)
		}
		if !regexp.MustCompile(`^SES1778405400000[0-9a-z]{6}$`).MatchString(ses) {
			t.Fatalf("unexpected session id %q", ses)
		}
	})

	t.Run("suffixes differ", func(t *testing.T) {
		if newEventID(now) == newEventID(now) {
			t.Fatalf("expected distinct ids within the same millisecond")
		}
	})
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{180: 180, 13.5: 14, 13.49: 13, 0: 0, 89.91: 90}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	got := retentionCutoff(now, 90)
	if want := now.AddDate(0, 0, -90); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
