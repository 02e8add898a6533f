package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexlab/internal/regexlib"
)

const passing = `
// classic dragon-book example
pattern "(a|b)*abb" {
    postfix "ab|*a.b.b.";
    accept "abb", "babb", "aabb";
    reject "ab", "", "abba";
    states 4;
    same "(a|b)*abb";
}

pattern "a+b?" {
    accept "a", "aab";
    reject "b", "";
    same "aa*(b|ε)";
}

invalid "(a|b";
invalid "*a";
`

func TestParse(t *testing.T) {
	s, err := Parse("passing.rx", passing)
	require.NoError(t, err)
	require.Len(t, s.Cases, 4)

	first := s.Cases[0].Pattern
	require.NotNil(t, first)
	assert.Equal(t, "(a|b)*abb", first.Regex)
	require.Len(t, first.Checks, 5)
	assert.Equal(t, []string{"abb", "babb", "aabb"}, first.Checks[1].Accept)
	assert.Equal(t, []string{"ab", "", "abba"}, first.Checks[2].Reject)
	require.NotNil(t, first.Checks[3].States)
	assert.Equal(t, 4, *first.Checks[3].States)

	require.NotNil(t, s.Cases[2].Invalid)
	assert.Equal(t, "(a|b", *s.Cases[2].Invalid)
	assert.Equal(t, 17, s.Cases[2].Pos.Line)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		`pattern "a" { accept "a" }`,
		`pattern "a" accept "a";`,
		`invalid "a"`,
		`pattern "a" { states x; }`,
		`match "a";`,
	} {
		_, err := Parse("bad.rx", src)
		assert.Error(t, err, src)
	}
}

func TestRunPassing(t *testing.T) {
	s, err := Parse("passing.rx", passing)
	require.NoError(t, err)

	rep := s.Run(nil)
	assert.True(t, rep.OK(), "%v", rep.Failures)
	assert.NoError(t, rep.Err())
	assert.Equal(t, 4, rep.Cases)
	// 6 inputs + 3 for the first case, 4 inputs + 1 for the second, 2 invalid
	assert.Equal(t, 16, rep.Checks)
}

func TestRunFailures(t *testing.T) {
	src := `
pattern "ab" {
    accept "a";
    states 7;
    postfix "ba.";
    same "ba";
}
pattern "(a" { accept "a"; }
invalid "a|b";
`
	s, err := Parse("failing.rx", src)
	require.NoError(t, err)

	rep := s.Run(&Context{})
	require.False(t, rep.OK())

	// accept fails on each engine, then states, postfix, same, compile, invalid
	assert.Len(t, rep.Failures, len(regexlib.Engines)+5)
	assert.Equal(t, 3, rep.Failures[0].Pos.Line)
	assert.Equal(t, "ab", rep.Failures[0].Pattern)
	assert.Contains(t, rep.Failures[len(regexlib.Engines)+2].Msg, "differs")

	err = rep.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing.rx:9")
}

func TestRunEndMarkerOption(t *testing.T) {
	s, err := Parse("marker.rx", `pattern "a#b" { accept "a#b"; } invalid "a$";`)
	require.NoError(t, err)

	rep := s.Run(&Context{Options: []regexlib.Option{regexlib.WithEndMarker('$')}})
	assert.True(t, rep.OK(), "%v", rep.Failures)
}

func TestRunTestdata(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "basic.rx"))
	require.NoError(t, err)
	s, err := Parse("basic.rx", string(data))
	require.NoError(t, err)

	rep := s.Run(&Context{})
	assert.True(t, rep.OK(), "%v", rep.Failures)
	assert.Equal(t, 12, rep.Cases)
}
