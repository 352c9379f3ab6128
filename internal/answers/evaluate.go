package answers

import "strings"

// DefaultPartialThreshold is the token-recall ratio at which a non-exact
// answer still counts as a partial match.
const DefaultPartialThreshold = 0.6

// Feedback is the three-way evaluation category. The wording shown to the
// learner is a presentation concern; the category itself is deterministic.
type Feedback string

const (
	FeedbackCorrect   Feedback = "correct"
	FeedbackPartial   Feedback = "partial"
	FeedbackIncorrect Feedback = "incorrect"
)

// Result describes the outcome of comparing a learner's answer against the
// expected one. It is ephemeral and never persisted.
type Result struct {
	Correct            bool
	Partial            bool
	Feedback           Feedback
	NormalizedUser     string
	NormalizedExpected string
}

// Evaluator grades free-text answers. The zero value is not usable; create
// one with New so the partial-match threshold is set.
type Evaluator struct {
	// PartialThreshold is the minimum fraction of expected-answer tokens
	// that must appear in the learner's answer for a partial match.
	PartialThreshold float64
}

// New returns an Evaluator with the default partial-match threshold.
func New() *Evaluator {
	return &Evaluator{PartialThreshold: DefaultPartialThreshold}
}

// Evaluate normalizes both answers and classifies the learner's answer as
// an exact match, a partial match, or a miss. It is total over any pair of
// strings, including empty ones.
func (e *Evaluator) Evaluate(userAnswer, correctAnswer string) Result {
	user := Normalize(userAnswer)
	expected := Normalize(correctAnswer)

	r := Result{
		NormalizedUser:     user,
		NormalizedExpected: expected,
	}

	if user == expected {
		r.Correct = true
		r.Feedback = FeedbackCorrect
		return r
	}

	r.Partial = e.partialMatch(user, expected)
	if r.Partial {
		r.Feedback = FeedbackPartial
	} else {
		r.Feedback = FeedbackIncorrect
	}
	return r
}

// partialMatch reports whether enough of the expected answer's words appear
// in the learner's answer. The metric is recall over the expected token
// set: word order and extra words in the learner's answer are ignored.
func (e *Evaluator) partialMatch(user, expected string) bool {
	if user == "" || expected == "" {
		return false
	}

	userTokens := tokenSet(user)
	expectedTokens := tokenSet(expected)
	if len(expectedTokens) == 0 {
		return false
	}

	hits := 0
	for tok := range expectedTokens {
		if _, ok := userTokens[tok]; ok {
			hits++
		}
	}

	return float64(hits)/float64(len(expectedTokens)) >= e.PartialThreshold
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
