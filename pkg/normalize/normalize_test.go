package normalize_test

import (
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-transcript/pkg/normalize"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Normalize_001(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"   \t\n  ", ""},
		{"um", ""},
		{"um so today we we talk about caches", "so today we talk about caches"},
		{"um so today we we talk about caches and memory hierarchies", "so today we talk about caches and memory hierarchies."},
		{"unlike this", "unlike this"},
		{"I like pizza", "I like pizza"},
		{"things I like", "things I like"},
		{"a kind of cache", "a kind of cache"},
		{"so, like, we start", "so, we start"},
		{"it was, like, fast", "it was, fast"},
		{"Um, I mean, the cache is fast", "the cache is fast"},
		{"the point, I mean", "the point"},
		{"like the cache", "like the cache"},
		{"I mean it", "I mean it"},
		{"you know what I mean", "you know what I mean"},
		{"Like, the cache", "the cache"},
		{"ok, you know; fine", "ok, fine"},
		{"so um we start", "so we start"},
		{"Ummm, okay", "okay"},
		{"summer is here", "summer is here"},
		{"the the cache", "the cache"},
		{"The the THE end", "The end"},
		{"we we.", "we."},
		{"hello , world", "hello, world"},
		{"wait.what", "wait. what"},
		{"really!!! yes,, no", "really! yes, no"},
		{"ok.um", "ok."},
		{strings.Repeat("x", 40), strings.Repeat("x", 40)},
		{strings.Repeat("x", 41), strings.Repeat("x", 41) + "."},
		{"This sentence is definitely longer than forty characters!", "This sentence is definitely longer than forty characters!"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(test.out, normalize.Normalize(test.in))
		})
	}
}

func Test_Normalize_002(t *testing.T) {
	assert := assert.New(t)
	tests := []string{
		"um so today we we talk about caches",
		"so, um, like, we start,, with the the basics..and then",
		"ok.um",
		"  Uh;  er: ah, the THE the end  !!  ",
		"e.g.this was sort of fun, you know",
		"I mean I mean I mean",
		"what?!what",
		"like like like, like",
		"naïve naïve café , ok",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			once := normalize.Normalize(test)
			assert.Equal(once, normalize.Normalize(once))
		})
	}
}

func Test_Rules_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("a b c", normalize.CollapseSpace("a \t b\n\nc"))
	assert.Equal("a, b;c", normalize.RemoveSpaceBeforePunct("a , b ;c"))
	assert.Equal("a, b. c 3.14", normalize.InsertSpaceAfterPunct("a,b.c 3.14"))
	assert.Equal("a.b,c?", normalize.CollapsePunct("a..b,,c??"))
	assert.Equal("a.,b", normalize.CollapsePunct("a.,b"))
}

func Test_Rules_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("the cache", normalize.Destutter("the the cache"))
	assert.Equal("the theory", normalize.Destutter("the theory"))
	assert.Equal("go, go now", normalize.Destutter("go, go now"))
	assert.Equal("we talk", normalize.Destutter("we  we we talk"))
	assert.Equal("a b a b", normalize.Destutter("a b a b"))
}

func Test_Rules_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("so we start", normalize.RemoveFillers("so um we start"))
	assert.Equal("so, we start", normalize.RemoveFillers("so um, we start"))
	assert.Equal("so, we start", normalize.RemoveFillers("so, um we start"))
	assert.Equal("ok", normalize.RemoveFillers("um uh er ah ok"))
	assert.Equal("I like pizza", normalize.RemoveFillers("I like pizza"))
	assert.Equal("unlike this", normalize.RemoveFillers("unlike this"))
	assert.Equal("", normalize.RemoveFillers("like"))
	assert.Equal("", normalize.RemoveFillers("You know"))
}

func Test_Rules_004(t *testing.T) {
	assert := assert.New(t)
	long := strings.Repeat("y", normalize.TerminalPeriodThreshold+1)
	assert.Equal(long+".", normalize.TerminalPeriod(long))
	assert.Equal(long+"!", normalize.TerminalPeriod(long+"!"))
	assert.Equal(long+"? ", normalize.TerminalPeriod(long+"? "))
	assert.Equal("short", normalize.TerminalPeriod("short"))
	assert.Equal("", normalize.TerminalPeriod(""))
}

func Test_Chain_001(t *testing.T) {
	assert := assert.New(t)
	chain := normalize.Chain()
	names := make([]string, 0, len(chain))
	for _, rule := range chain {
		names = append(names, rule.Name)
	}
	assert.Equal([]string{
		"trim", "collapse-space", "fillers", "collapse-space", "destutter",
		"space-before-punct", "space-after-punct", "repeat-punct", "terminal-period",
	}, names)

	// Modifying the copy does not change the chain
	chain[0].Fn = strings.ToUpper
	assert.Equal("abc", normalize.Normalize("abc"))

	var n int
	out := normalize.Trace(" the  the end ", func(rule normalize.Rule, text string) {
		n++
	})
	assert.Equal(len(chain), n)
	assert.Equal("the end", out)
	assert.Equal(" a b ", normalize.Apply("  a   b ", chain[1:2]...))
}
