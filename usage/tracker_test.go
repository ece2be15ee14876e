package usage

import (
	"testing"
	"time"
)

func TestTracker_Record(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record("m1", 100, 200)
	tr.Record("m1", 50, 25)
	tr.Record("m2", 10, 20)

	u := tr.For("m1")
	if u.InputTokens != 150 || u.OutputTokens != 225 || u.Requests != 2 {
		t.Errorf("unexpected usage for m1: %+v", u)
	}

	total := tr.Total()
	if total.InputTokens != 160 || total.OutputTokens != 245 || total.Requests != 3 {
		t.Errorf("unexpected total: %+v", total)
	}
	if total.TotalTokens() != 405 {
		t.Errorf("expected 405 total tokens, got %d", total.TotalTokens())
	}
}

func TestTracker_Summary(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record("m1", 1, 2)

	summary := tr.Summary()
	if len(summary) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(summary))
	}

	// The summary is a copy.
	summary["m1"] = Usage{InputTokens: 999}
	if tr.For("m1").InputTokens != 1 {
		t.Error("mutating the summary affected the tracker")
	}
}

func TestTracker_EstimatedCost(t *testing.T) {
	tr := NewTracker(map[string]Pricing{
		"m1": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	})
	tr.Record("m1", 1_000_000, 2_000_000)
	tr.Record("unpriced", 5_000_000, 5_000_000)

	want := 3.0 + 2*15.0
	if got := tr.EstimatedCost(); got != want {
		t.Errorf("expected cost %.2f, got %.2f", want, got)
	}
}

func TestTracker_DayRollover(t *testing.T) {
	tr := NewTracker(nil)
	current := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return current }

	tr.Record("m1", 100, 100)
	if tr.For("m1").Requests != 1 {
		t.Fatal("expected recorded usage")
	}
	if tr.Day() != "2026-08-23" {
		t.Errorf("unexpected day %q", tr.Day())
	}

	// Crossing the UTC day boundary clears the totals.
	current = current.Add(15 * time.Hour)
	if got := tr.For("m1"); got.Requests != 0 {
		t.Errorf("expected empty usage after rollover, got %+v", got)
	}
	if tr.Day() != "2026-08-24" {
		t.Errorf("unexpected day %q", tr.Day())
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record("m1", 1, 1)
	tr.Reset()

	if tr.Total().Requests != 0 {
		t.Error("expected empty totals after reset")
	}
}
