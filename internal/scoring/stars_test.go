package scoring

import "testing"

func TestRate(t *testing.T) {
	tests := []struct {
		score, total int
		want         int
	}{
		{8, 8, 3},
		{1, 1, 3},
		{7, 8, 2},
		{5, 8, 2},
		{4, 8, 1},
		{0, 8, 1},
		{3, 5, 2},
		{2, 5, 1},
		{0, 1, 1},
		{6, 10, 2},
		{59, 100, 1},
	}
	for _, tt := range tests {
		if got := Rate(tt.score, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestRateAlwaysInRange(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for score := 0; score <= total; score++ {
			got := Rate(score, total)
			if got < 1 || got > MaxStars {
				t.Fatalf("Rate(%d, %d) = %d out of range", score, total, got)
			}
		}
	}
}

func TestRatePanicsOnEmptyTotal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for total 0")
		}
	}()
	Rate(0, 0)
}

func TestRatePanicsOnScoreAboveTotal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for score > total")
		}
	}()
	Rate(5, 4)
}

func TestMessage(t *testing.T) {
	if Message(3) == Message(2) || Message(2) == Message(1) {
		t.Error("expected distinct messages per star count")
	}
}
