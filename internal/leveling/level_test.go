package leveling

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		total    int
		want     Level
	}{
		{"no history", 0.0, 0, Beginner},
		{"perfect but tiny sample", 1.0, 9, Beginner},
		{"volume floor is exclusive at 10", 0.95, 10, Beginner},
		{"accurate but below intermediate volume", 0.75, 15, Beginner},
		{"intermediate at exact thresholds", 0.70, 20, Intermediate},
		{"intermediate with high volume", 0.80, 100, Intermediate},
		{"advanced accuracy without volume stays intermediate", 0.90, 30, Intermediate},
		{"advanced at exact thresholds", 0.85, 50, Advanced},
		{"advanced with margin", 0.95, 200, Advanced},
		{"just under advanced accuracy", 0.849, 50, Intermediate},
		{"just under intermediate accuracy", 0.699, 40, Beginner},
		{"low accuracy high volume", 0.40, 500, Beginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.accuracy, tt.total)
			if got != tt.want {
				t.Errorf("Classify(%v, %d) = %v, want %v", tt.accuracy, tt.total, got, tt.want)
			}
		})
	}
}

func TestClassifyClampsInputs(t *testing.T) {
	if got := Classify(-0.5, -3); got != Beginner {
		t.Errorf("Classify(-0.5, -3) = %v, want %v", got, Beginner)
	}
	if got := Classify(1.7, 50); got != Advanced {
		t.Errorf("Classify(1.7, 50) = %v, want %v", got, Advanced)
	}
}

// Raising accuracy while holding volume fixed never lowers the tier.
func TestClassifyMonotonicInAccuracy(t *testing.T) {
	for _, total := range []int{0, 9, 10, 20, 49, 50, 100} {
		prev := -1
		for acc := 0.0; acc <= 1.0; acc += 0.01 {
			rank := Classify(acc, total).Rank()
			if rank < prev {
				t.Fatalf("tier rank dropped from %d to %d at accuracy %.2f, total %d", prev, rank, acc, total)
			}
			prev = rank
		}
	}
}

func TestLevelRank(t *testing.T) {
	if !(Beginner.Rank() < Intermediate.Rank() && Intermediate.Rank() < Advanced.Rank()) {
		t.Error("level ranks are not strictly ordered")
	}
	if Level("bogus").Rank() != 0 {
		t.Error("unknown level should rank as beginner")
	}
}
