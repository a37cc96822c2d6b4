package report

import (
	"github.com/mgutz/ansi"
)

// Colorizer colors the console output of a run.
type Colorizer struct {
	headingColorizer func(string) string
	sectionColorizer func(string) string
	successColorizer func(string) string
	warningColorizer func(string) string
	countColorizer   func(string) string
	pathColorizer    func(string) string
	ruleColorizer    func(string) string
}

// NewColorizer creates a new Colorizer. When shouldColor is false every colorizer returns its input unchanged.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		noColor := func(s string) string { return s }

		return &Colorizer{
			headingColorizer: noColor,
			sectionColorizer: noColor,
			successColorizer: noColor,
			warningColorizer: noColor,
			countColorizer:   noColor,
			pathColorizer:    noColor,
			ruleColorizer:    noColor,
		}
	}

	return &Colorizer{
		headingColorizer: ansi.ColorFunc("white+bh"),
		sectionColorizer: ansi.ColorFunc("cyan+b"),
		successColorizer: ansi.ColorFunc("green+bh"),
		warningColorizer: ansi.ColorFunc("yellow+bh"),
		countColorizer:   ansi.ColorFunc("white+bh"),
		pathColorizer:    ansi.ColorFunc("blue+h"),
		ruleColorizer:    ansi.ColorFunc("gray"),
	}
}
