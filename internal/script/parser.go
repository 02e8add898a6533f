package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Script is a batch of regex scenarios:
//
//	pattern "(a|b)*abb" {
//	    postfix "ab|*a.b.b.";
//	    accept "abb", "babb";
//	    reject "ab", "";
//	    states 4;
//	    same "(a|b)*abb";
//	}
//	invalid "(a|b";
type Script struct {
	Cases []*Case `parser:"@@*"`
}

type Case struct {
	Pos lexer.Position

	Pattern *PatternCase `parser:"  @@"`
	Invalid *string      `parser:"| 'invalid' @String ';'"`
}

type PatternCase struct {
	Regex  string   `parser:"'pattern' @String '{'"`
	Checks []*Check `parser:"@@* '}'"`
}

type Check struct {
	Pos lexer.Position

	Accept  []string `parser:"  'accept' @String (',' @String)* ';'"`
	Reject  []string `parser:"| 'reject' @String (',' @String)* ';'"`
	States  *int     `parser:"| 'states' @Int ';'"`
	Postfix *string  `parser:"| 'postfix' @String ';'"`
	Same    *string  `parser:"| 'same' @String ';'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[{};,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a script; name is used in positions and error messages.
func Parse(name, data string) (*Script, error) {
	s, err := parser.ParseString(name, data)
	if err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	return s, nil
}
