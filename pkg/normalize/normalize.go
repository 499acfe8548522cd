// Package normalize applies a conservative, ordered chain of rewrite rules to
// recognized speech, so that it reads as prose.
package normalize

import (
	"strings"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Rule is a single pure text transformation in the chain
type Rule struct {
	Name string
	Fn   func(string) string
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

// TerminalPeriodThreshold is the length (in characters) above which a block of
// text without terminal punctuation gets a period appended. Shorter fragments
// are left alone.
const TerminalPeriodThreshold = 40

// Upper bound on the number of times the chain is re-applied
const maxPasses = 8

var chain = []Rule{
	{"trim", strings.TrimSpace},
	{"collapse-space", CollapseSpace},
	{"fillers", RemoveFillers},
	{"collapse-space", func(text string) string {
		return strings.TrimSpace(CollapseSpace(text))
	}},
	{"destutter", Destutter},
	{"space-before-punct", RemoveSpaceBeforePunct},
	{"space-after-punct", InsertSpaceAfterPunct},
	{"repeat-punct", CollapsePunct},
	{"terminal-period", TerminalPeriod},
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chain returns a copy of the ordered rules which Normalize applies
func Chain() []Rule {
	result := make([]Rule, len(chain))
	copy(result, chain)
	return result
}

// Normalize cleans up the text by applying the rule chain until the output no
// longer changes. An empty string is returned when nothing meaningful remains.
func Normalize(text string) string {
	for i := 0; i < maxPasses; i++ {
		next := Apply(text, chain...)
		if next == text {
			break
		}
		text = next
	}
	return text
}

// Apply runs the rules once, in order, over the text
func Apply(text string, rules ...Rule) string {
	for _, rule := range rules {
		text = rule.Fn(text)
	}
	return text
}

// Trace runs the chain once, calling fn with the output of every rule
func Trace(text string, fn func(rule Rule, text string)) string {
	for _, rule := range chain {
		text = rule.Fn(text)
		fn(rule, text)
	}
	return text
}
