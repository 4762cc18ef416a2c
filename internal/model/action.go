package model

import (
	"fmt"
	"strings"
)

// Action is one normalized step derived from an event, used for narrative
// display and test script generation.
type Action struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Value  string `json:"value,omitempty"`
	URL    string `json:"url,omitempty"`
}

// IsLoginAction reports whether this action looks like a login form input.
func (a Action) IsLoginAction() bool {
	return a.Type == "input" && strings.Contains(strings.ToLower(a.Target), "email")
}

// IsCheckoutNavigation reports whether this action navigates to a checkout page.
func (a Action) IsCheckoutNavigation() bool {
	return a.Type == "navigation" && strings.Contains(strings.ToLower(a.URL), "checkout")
}

// TestScriptLine renders the action as one Playwright statement.
// Unsupported action types render as the empty string.
func (a Action) TestScriptLine() string {
	switch a.Type {
	case "input":
		return fmt.Sprintf("page.locator('%s').fill('%s')", a.Target, a.Value)
	case "click":
		return fmt.Sprintf("page.locator('%s').click()", a.Target)
	case "navigation":
		return fmt.Sprintf("page.goto('%s')", a.URL)
	}
	return ""
}
