package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	reSpace            = regexp.MustCompile(`\s+`)
	reWord             = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	rePunctBeforeAlpha = regexp.MustCompile(`([,.;:!?])([A-Za-z])`)
	reRepeatedPunct    = regexp.MustCompile(`,{2,}|\.{2,}|;{2,}|:{2,}|!{2,}|\?{2,}`)
	reTerminal         = regexp.MustCompile(`[.!?]\s*$`)
	reFiller           = regexp.MustCompile(`(?i)um+|uh+|er+|ah+|like|you know|kind of|sort of|i mean`)
)

// Fillers which are only removed when set off by punctuation or the edges of
// the text, since they are also ordinary words
var discourse = map[string]bool{
	"like":     true,
	"you know": true,
	"kind of":  true,
	"sort of":  true,
	"i mean":   true,
}

// Sentinel for the start or end of the text
const edge = rune(-1)

// Characters dropped next to a filler which is removed
const delimiters = " ,;:"

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CollapseSpace replaces every run of whitespace with a single space
func CollapseSpace(text string) string {
	return reSpace.ReplaceAllString(text, " ")
}

// RemoveFillers removes hesitations (um, uh, er, ah) and discourse fillers
// (like, you know, kind of, sort of, I mean). A filler must be delimited on
// both sides by a space, comma, semicolon, colon or the edge of the text.
// Discourse fillers are only removed when they are set off by punctuation or
// the edges of the text, so "I like pizza" is left alone. The filler and its
// delimiters are replaced by a single delimiter.
func RemoveFillers(text string) string {
	for {
		next, ok := removeFiller(text)
		if !ok {
			return text
		}
		text = next
	}
}

// Destutter collapses a word which is immediately repeated (ignoring case)
// into its first occurrence, so "the the cache" becomes "the cache"
func Destutter(text string) string {
	var b strings.Builder
	var prev string
	var pos int
	for _, loc := range reWord.FindAllStringIndex(text, -1) {
		sep, word := text[pos:loc[0]], text[loc[0]:loc[1]]
		if prev != "" && isSpace(sep) && strings.EqualFold(prev, word) {
			pos = loc[1]
			continue
		}
		b.WriteString(sep)
		b.WriteString(word)
		prev, pos = word, loc[1]
	}
	b.WriteString(text[pos:])
	return b.String()
}

// RemoveSpaceBeforePunct removes whitespace before , . ; : ! and ?
func RemoveSpaceBeforePunct(text string) string {
	return reSpaceBeforePunct.ReplaceAllString(text, "$1")
}

// InsertSpaceAfterPunct puts a space between punctuation and a following letter
func InsertSpaceAfterPunct(text string) string {
	return rePunctBeforeAlpha.ReplaceAllString(text, "$1 $2")
}

// CollapsePunct replaces a run of the same punctuation mark with one mark
func CollapsePunct(text string) string {
	return reRepeatedPunct.ReplaceAllStringFunc(text, func(run string) string {
		return run[:1]
	})
}

// TerminalPeriod appends a period to text longer than TerminalPeriodThreshold
// which does not already end a sentence
func TerminalPeriod(text string) string {
	if text == "" || reTerminal.MatchString(text) {
		return text
	}
	if utf8.RuneCountInString(text) > TerminalPeriodThreshold {
		return text + "."
	}
	return text
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// removeFiller removes the first acceptable filler from the text, and returns
// false if there was none
func removeFiller(text string) (string, bool) {
	for _, loc := range reFiller.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]

		// Find the nearest non-space neighbours on either side
		ls, he := start, end
		for ls > 0 && text[ls-1] == ' ' {
			ls--
		}
		for he < len(text) && text[he] == ' ' {
			he++
		}
		left, right := edge, edge
		if ls > 0 {
			left, _ = utf8.DecodeLastRuneInString(text[:ls])
		}
		if he < len(text) {
			right, _ = utf8.DecodeRuneInString(text[he:])
		}

		// The filler needs to be delimited on both sides
		if ls == start && !isDelimiter(left) {
			continue
		}
		if he == end && !isDelimiter(right) {
			continue
		}
		if discourse[strings.ToLower(text[start:end])] && !(isDelimiter(left) && isDelimiter(right)) {
			continue
		}

		// Splice out the filler, leaving a single delimiter in its place
		switch {
		case left == edge:
			return strings.TrimLeft(text[end:], delimiters), true
		case right == edge:
			return strings.TrimRight(text[:start], delimiters), true
		case isDelimiter(left):
			return text[:ls] + " " + strings.TrimLeft(text[he:], delimiters), true
		case isDelimiter(right):
			return text[:ls] + string(right) + " " + strings.TrimLeft(text[he+1:], " "), true
		default:
			return text[:ls] + " " + text[he:], true
		}
	}
	return text, false
}

// isDelimiter returns true for punctuation which sets off a filler, or the
// edge of the text
func isDelimiter(r rune) bool {
	switch r {
	case edge, ',', ';', ':':
		return true
	default:
		return false
	}
}

func isSpace(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
