package testgen

import (
	"fmt"
	"strings"

	"story-pipeline/internal/model"
)

const actionIndent = "        "

// scriptPreamble opens a Playwright session and a page; every generated
// script starts with it and ends with a browser.close() teardown.
var scriptPreamble = []string{
	"from playwright.sync_api import sync_playwright",
	"",
	"def test_generated():",
	"    with sync_playwright() as p:",
	"        browser = p.chromium.launch()",
	"        page = browser.new_page()",
}

// FromStory derives an executable test from a story's action sequence.
func FromStory(story model.Story) model.Test {
	return model.Test{
		StoryID:    story.ID,
		TestScript: Script(story.Actions),
	}
}

// Script renders one statement per action between the fixed preamble and
// teardown. Output is a pure function of the action list: identical input
// yields byte-identical scripts.
func Script(actions []model.Action) string {
	lines := append([]string{}, scriptPreamble...)
	for _, action := range actions {
		if line := action.TestScriptLine(); line != "" {
			lines = append(lines, actionIndent+line)
		} else {
			lines = append(lines, fmt.Sprintf("%s# Unsupported action: %s", actionIndent, action.Type))
		}
	}
	lines = append(lines, actionIndent+"browser.close()")
	return strings.Join(lines, "\n")
}
