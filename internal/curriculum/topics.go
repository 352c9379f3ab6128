package curriculum

import "github.com/example/lingua/internal/leveling"

// MaxRecommendations caps the number of topics returned per request.
const MaxRecommendations = 5

// weakTopicFocus is how many weak topics to surface before falling back to
// the tier's default curriculum.
const weakTopicFocus = 3

// defaultTopics is the static per-tier curriculum. Order matters: earlier
// topics are introduced first.
var defaultTopics = map[leveling.Level][]string{
	leveling.Beginner: {
		"Present Simple",
		"To be",
		"Articles (a/an/the)",
		"Plural nouns",
		"Basic pronouns",
	},
	leveling.Intermediate: {
		"Past Simple",
		"Present Continuous",
		"Future Simple",
		"Comparatives",
		"Modal verbs",
	},
	leveling.Advanced: {
		"Present Perfect",
		"Past Perfect",
		"Conditionals",
		"Passive Voice",
		"Reported Speech",
	},
}

// DefaultTopics returns the ordered default curriculum for a tier.
// Unknown tiers get the beginner curriculum.
func DefaultTopics(level leveling.Level) []string {
	topics, ok := defaultTopics[level]
	if !ok {
		topics = defaultTopics[leveling.Beginner]
	}
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// Recommend selects the next topics to focus on. Weak topics take priority
// in their stored most-recent-kept order; with no weak topics the tier's
// default curriculum applies, truncated to MaxRecommendations.
func Recommend(level leveling.Level, weakTopics []string) []string {
	if len(weakTopics) > 0 {
		n := min(weakTopicFocus, len(weakTopics))
		out := make([]string, n)
		copy(out, weakTopics[:n])
		return out
	}

	topics := DefaultTopics(level)
	if len(topics) > MaxRecommendations {
		topics = topics[:MaxRecommendations]
	}
	return topics
}
