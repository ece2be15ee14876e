package truncate

import (
	"strings"
	"testing"

	"github.com/tmeadow/tokenledger/tokens"
)

func TestTruncate_FitsUnchanged(t *testing.T) {
	text := "short text"
	result, truncated := NewFromEnd().Truncate(text, 100)

	if truncated {
		t.Error("expected no truncation")
	}
	if result != text {
		t.Errorf("expected unchanged text, got %q", result)
	}
}

func TestTruncate_FromEnd(t *testing.T) {
	est := tokens.NewHeuristicEstimator()
	text := strings.Repeat("a", 400) // 100 tokens

	result, truncated := NewFromEnd().Truncate(text, 10)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !strings.HasSuffix(result, DefaultEndMarker) {
		t.Errorf("expected end marker, got %q", result)
	}
	if !est.Fits(result, 10) {
		t.Errorf("result exceeds limit: %d tokens", est.Estimate(result))
	}
	if !strings.HasPrefix(result, "aaaa") {
		t.Errorf("expected content kept from the start, got %q", result)
	}
}

func TestTruncate_FromStart(t *testing.T) {
	est := tokens.NewHeuristicEstimator()
	text := strings.Repeat("a", 200) + strings.Repeat("z", 200)

	result, truncated := NewFromStart().Truncate(text, 10)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !strings.HasPrefix(result, DefaultStartMarker) {
		t.Errorf("expected start marker, got %q", result)
	}
	if !est.Fits(result, 10) {
		t.Errorf("result exceeds limit: %d tokens", est.Estimate(result))
	}
	if !strings.HasSuffix(result, "zzzz") {
		t.Errorf("expected content kept from the end, got %q", result)
	}
}

func TestTruncate_FromMiddle(t *testing.T) {
	text := strings.Repeat("a", 200) + strings.Repeat("z", 200)

	result, truncated := NewFromMiddle().Truncate(text, 20)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !strings.Contains(result, DefaultMiddleMarker) {
		t.Errorf("expected middle marker, got %q", result)
	}
	if !strings.HasPrefix(result, "a") || !strings.HasSuffix(result, "z") {
		t.Errorf("expected both ends kept, got %q", result)
	}
}

func TestTruncate_TinyLimit(t *testing.T) {
	text := strings.Repeat("a", 400)

	result, truncated := NewFromEnd().Truncate(text, 1)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if result != DefaultEndMarker {
		t.Errorf("expected bare marker at tiny limit, got %q", result)
	}
}

func TestTruncate_Multibyte(t *testing.T) {
	text := strings.Repeat("日", 400)

	result, _ := NewFromEnd().Truncate(text, 10)
	for _, r := range strings.TrimSuffix(result, DefaultEndMarker) {
		if r != '日' {
			t.Fatalf("multi-byte character split, got rune %q", r)
		}
	}
}

func TestTruncate_CustomMarker(t *testing.T) {
	text := strings.Repeat("a", 400)

	result, _ := NewFromEnd().WithMarker(" [cut]").Truncate(text, 10)
	if !strings.HasSuffix(result, " [cut]") {
		t.Errorf("expected custom marker, got %q", result)
	}
}

func TestTruncate_CustomEstimator(t *testing.T) {
	// A denser estimator truncates more aggressively.
	dense := tokens.NewHeuristicEstimatorWithRatio(1.0)
	text := strings.Repeat("a", 400)

	coarse, _ := NewFromEnd().Truncate(text, 10)
	fine, _ := NewFromEnd().WithEstimator(dense).Truncate(text, 10)
	if len(fine) >= len(coarse) {
		t.Errorf("expected denser estimator to keep less: %d vs %d", len(fine), len(coarse))
	}
}

func TestToTokens(t *testing.T) {
	est := tokens.NewHeuristicEstimator()
	result := ToTokens(strings.Repeat("a", 400), 25)
	if !est.Fits(result, 25) {
		t.Errorf("result exceeds limit: %d tokens", est.Estimate(result))
	}
}
