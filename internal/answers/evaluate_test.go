package answers

import "testing"

func TestEvaluateExactMatch(t *testing.T) {
	e := New()

	tests := []struct {
		user     string
		expected string
	}{
		{"I go to school", "I go to school"},
		{"  i GO to school!  ", "I go to school."},
		{"don't worry", "Don't worry!"},
		{"", ""},
	}

	for _, tt := range tests {
		got := e.Evaluate(tt.user, tt.expected)
		if !got.Correct || got.Partial {
			t.Errorf("Evaluate(%q, %q) = %+v, want exact match", tt.user, tt.expected, got)
		}
		if got.Feedback != FeedbackCorrect {
			t.Errorf("Evaluate(%q, %q) feedback = %q, want %q", tt.user, tt.expected, got.Feedback, FeedbackCorrect)
		}
	}
}

func TestEvaluatePartialMatch(t *testing.T) {
	e := New()

	// 4 of the 5 expected tokens appear in the learner's answer (0.8 >= 0.6).
	got := e.Evaluate("I go to school", "I go to the school")
	if got.Correct {
		t.Fatal("expected non-exact match")
	}
	if !got.Partial {
		t.Fatal("expected partial match")
	}
	if got.Feedback != FeedbackPartial {
		t.Errorf("feedback = %q, want %q", got.Feedback, FeedbackPartial)
	}
}

func TestEvaluateMiss(t *testing.T) {
	e := New()

	got := e.Evaluate("cat", "dog")
	if got.Correct || got.Partial {
		t.Fatalf("Evaluate(cat, dog) = %+v, want miss", got)
	}
	if got.Feedback != FeedbackIncorrect {
		t.Errorf("feedback = %q, want %q", got.Feedback, FeedbackIncorrect)
	}
}

func TestEvaluateEmptyAnswers(t *testing.T) {
	e := New()

	// Empty learner answer against a real expected answer is a plain miss.
	got := e.Evaluate("", "the cat sat")
	if got.Correct || got.Partial {
		t.Errorf("empty user answer: got %+v, want miss", got)
	}

	// Expected answer normalizing to nothing can never partially match.
	got = e.Evaluate("anything", "!!!")
	if got.Correct || got.Partial {
		t.Errorf("empty expected answer: got %+v, want miss", got)
	}
}

func TestEvaluateDirectionality(t *testing.T) {
	e := New()

	// Recall is measured over the expected tokens, not the learner's.
	// Here all 2 expected tokens appear in the learner's longer answer.
	got := e.Evaluate("the big red cat sat down", "cat sat")
	if !got.Partial {
		t.Error("expected partial match when expected tokens are contained in a longer answer")
	}

	// Reversed: only 2 of 6 expected tokens appear (0.33 < 0.6).
	got = e.Evaluate("cat sat", "the big red cat sat down")
	if got.Partial {
		t.Error("containment must be measured against the expected answer, not the learner's")
	}
}

func TestEvaluateThresholdBoundary(t *testing.T) {
	e := New()

	// Exactly 3 of 5 expected tokens: 0.6 is inclusive.
	got := e.Evaluate("one two three", "one two three four five")
	if !got.Partial {
		t.Error("ratio exactly at threshold should count as partial")
	}

	// 2 of 5 falls below.
	got = e.Evaluate("one two", "one two three four five")
	if got.Partial {
		t.Error("ratio below threshold must not count as partial")
	}
}

func TestEvaluateConfigurableThreshold(t *testing.T) {
	strict := &Evaluator{PartialThreshold: 0.9}
	got := strict.Evaluate("one two three", "one two three four five")
	if got.Partial {
		t.Error("0.6 recall should not pass a 0.9 threshold")
	}

	lenient := &Evaluator{PartialThreshold: 0.3}
	got = lenient.Evaluate("one two", "one two three four five")
	if !got.Partial {
		t.Error("0.4 recall should pass a 0.3 threshold")
	}
}

func TestEvaluateDuplicateTokens(t *testing.T) {
	e := New()

	// Token sets, not multisets: repeated words count once.
	got := e.Evaluate("no no no", "no")
	if !got.Correct && !got.Partial {
		t.Error("repeated token should still cover the single expected token")
	}
}
