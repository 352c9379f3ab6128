package exercise

// fallbackExercise returns a canned exercise for the given type. Served
// when the provider is unavailable or returns garbage, so a practice
// session never dead-ends on an API outage.
func fallbackExercise(input GenerateInput) *Exercise {
	var ex Exercise

	switch input.Type {
	case TypeTranslate:
		ex = Exercise{
			Title:       "Translation RU→EN",
			Instruction: "Translate into English. Answer in one line.",
			Question:    "Я изучаю английский каждый день, потому что хочу говорить свободно.",
			Answer:      "I study English every day because I want to speak fluently.",
			Explanation: "Present Simple for regular actions; \"because\" introduces the reason.",
			Tips:        []string{"Check the word order: S + V + ...", "Check your spelling"},
		}
	case TypeVocab:
		ex = Exercise{
			Title:       "Vocabulary",
			Instruction: "Choose the correct option. Answer with the letter A/B/C.",
			Question:    "Choose the correct word:\nI ____ a cup of tea every morning.\nA) do\nB) drink\nC) play",
			Answer:      "B",
			Explanation: "With beverages we use \"drink\".",
			Tips:        []string{"Decide the part of speech first", "Think of common collocations"},
		}
	default:
		ex = Exercise{
			Title:       "Grammar",
			Instruction: "Fill in the gap. Answer in one line.",
			Question:    "She ____ to school every day. (go)",
			Answer:      "goes",
			Explanation: "In Present Simple with he/she/it the verb takes -s/-es.",
			Tips:        []string{"he/she/it → +s/-es", "Watch the spelling (go → goes)"},
		}
	}

	ex.Type = input.Type
	ex.Topic = input.Topic
	ex.Fallback = true
	return &ex
}
