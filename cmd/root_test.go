package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"practice", "ask", "review", "stats", "reset", "llm"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}
