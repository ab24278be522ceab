package panel

import (
	"fmt"
	"strings"

	"jrc/internal/theme"
)

// guideTab is one tab of the guide panel's static document.
type guideTab struct {
	ID    string
	Title string
	Body  string
}

// guideTabs is the fixed document shown by the guide panel.
var guideTabs = []guideTab{
	{
		ID:    "overview",
		Title: "Overview",
		Body: strings.Join([]string{
			"jrc keeps your Java runtime configuration healthy.",
			"",
			"It discovers JDK installations from your settings, your",
			"environment and well-known install locations, validates each",
			"one, and suggests a download when nothing usable is found.",
		}, "\n"),
	},
	{
		ID:    "discovery",
		Title: "Discovery",
		Body: strings.Join([]string{
			"Candidates are checked in a fixed order:",
			"",
			"  1. the " + theme.ValueStyle.Render("java.home") + " setting",
			"  2. the JDK_HOME environment variable",
			"  3. the JAVA_HOME environment variable",
			"  4. auto-detected installations",
			"",
			"The first candidate with a non-empty path decides whether",
			"your runtime is considered usable.",
		}, "\n"),
	},
	{
		ID:    "troubleshooting",
		Title: "Troubleshooting",
		Body: strings.Join([]string{
			"A valid JDK root contains bin/javac. Common mistakes:",
			"",
			"  - pointing at the bin directory instead of its parent",
			"  - pointing at a JRE, which has no compiler",
			"  - using a release older than Java 11",
			"",
			"Run " + theme.ValueStyle.Render("jrc doctor") + " for a full report.",
		}, "\n"),
	},
}

// startSteps is the fixed document shown by the getting-started panel.
var startSteps = []string{
	"Run " + theme.ValueStyle.Render("jrc doctor") + " to check your current Java runtime.",
	"Set a JDK root with " + theme.ValueStyle.Render("jrc set-home <path>") + " if discovery picks the wrong one.",
	"Run " + theme.ValueStyle.Render("jrc suggest") + " to get a download suggestion when no JDK is usable.",
	"Open " + theme.ValueStyle.Render("jrc guide") + " for the full guide.",
}

// contentFor returns the fixed static document loaded into a feature's
// surface when it is constructed.
func contentFor(feature Feature) string {
	switch feature {
	case FeatureRuntimeConfig:
		return theme.Faint.Render("Entries below are re-validated every time this panel opens.")
	case FeatureGuide:
		return guideTabs[0].Body
	case FeatureGettingStarted:
		var b strings.Builder
		for i, step := range startSteps {
			b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  %d. ", i+1)))
			b.WriteString(step)
			b.WriteString("\n")
		}
		return b.String()
	}
	return ""
}
