package curriculum

import (
	"reflect"
	"testing"

	"github.com/example/lingua/internal/leveling"
)

func TestRecommendPrefersWeakTopics(t *testing.T) {
	weak := []string{"Articles (a/an/the)", "Past Simple", "Modal verbs", "Conditionals"}

	got := Recommend(leveling.Intermediate, weak)
	want := []string{"Articles (a/an/the)", "Past Simple", "Modal verbs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend with weak topics = %v, want %v", got, want)
	}
}

func TestRecommendFewWeakTopics(t *testing.T) {
	got := Recommend(leveling.Beginner, []string{"To be"})
	if !reflect.DeepEqual(got, []string{"To be"}) {
		t.Errorf("Recommend = %v, want the single weak topic", got)
	}
}

func TestRecommendFallsBackToCurriculum(t *testing.T) {
	for _, level := range []leveling.Level{leveling.Beginner, leveling.Intermediate, leveling.Advanced} {
		got := Recommend(level, nil)
		if len(got) == 0 || len(got) > MaxRecommendations {
			t.Errorf("Recommend(%v, nil) returned %d topics", level, len(got))
		}
		if !reflect.DeepEqual(got, DefaultTopics(level)[:len(got)]) {
			t.Errorf("Recommend(%v, nil) = %v, want the tier defaults in order", level, got)
		}
	}
}

func TestRecommendUnknownLevel(t *testing.T) {
	got := Recommend(leveling.Level("wizard"), nil)
	if !reflect.DeepEqual(got, DefaultTopics(leveling.Beginner)) {
		t.Errorf("unknown level should fall back to beginner defaults, got %v", got)
	}
}

func TestDefaultTopicsPerTier(t *testing.T) {
	for _, level := range []leveling.Level{leveling.Beginner, leveling.Intermediate, leveling.Advanced} {
		if got := DefaultTopics(level); len(got) < 5 {
			t.Errorf("DefaultTopics(%v) has %d topics, want at least 5", level, len(got))
		}
	}
}

func TestDefaultTopicsReturnsCopy(t *testing.T) {
	first := DefaultTopics(leveling.Beginner)
	first[0] = "mutated"
	if DefaultTopics(leveling.Beginner)[0] == "mutated" {
		t.Error("DefaultTopics must not expose the internal catalog slice")
	}
}
