package story

import (
	"strings"

	"story-pipeline/internal/model"
)

// Pattern names form a closed vocabulary; report keys never fall outside it.
const (
	PatternLogin                  = "login"
	PatternCheckout               = "checkout"
	PatternSearch                 = "search"
	PatternNavigationToSection    = "navigation_to_section"
	PatternHighlightedInteraction = "interaction_with_highlighted_content"
	PatternRepeatedClick          = "repeated_click"
	PatternUIIconInteraction      = "ui_icon_interaction"
	PatternAmbiguousInteraction   = "ambiguous_interaction"
)

// DetectPatterns classifies every action of every story against the rule
// chain and counts matches per pattern per story. Patterns without matches
// are absent from the report.
func DetectPatterns(stories []model.Story) model.PatternReport {
	report := model.PatternReport{}
	for _, story := range stories {
		for _, action := range story.Actions {
			pattern := classify(action)
			if pattern == "" {
				continue
			}
			if report[pattern] == nil {
				report[pattern] = make(map[string]int)
			}
			report[pattern][story.ID]++
		}
	}
	return report
}

// classify evaluates the rules in order; the first match wins. Several
// predicates overlap (a click on "a" with value "Test Cases" is
// navigation_to_section, never repeated_click), so the order is part of the
// contract and must not be rearranged.
func classify(a model.Action) string {
	switch {
	case a.Type == "input" && strings.Contains(a.Target, "login"):
		return PatternLogin
	case a.Type == "click" && strings.Contains(a.Target, "checkout"):
		return PatternCheckout
	case a.Type == "navigation" && strings.Contains(a.Target, "search"):
		return PatternSearch
	case a.Type == "click" && a.Target == "a" && isSectionLabel(a.Value):
		return PatternNavigationToSection
	case a.Type == "click" && a.Target == "div" && a.Value != "":
		return PatternHighlightedInteraction
	case a.Type == "click" && a.Value == "Test Cases":
		return PatternRepeatedClick
	case a.Type == "click" && a.Target == "svg":
		return PatternUIIconInteraction
	case a.Type == "click" && a.Value == "":
		return PatternAmbiguousInteraction
	}
	return ""
}

func isSectionLabel(value string) bool {
	return value == "User Stories" || value == "Test Cases"
}
