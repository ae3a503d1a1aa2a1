package edgelist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// edgeLine is the parse tree of a single input line.
type edgeLine struct {
	From string `parser:"@Name \"-\""`
	To   string `parser:"@Name"`
}

// sEdgeLexer has no whitespace rule: a blank inside a trimmed line matches
// nothing, so "a - b" is a lexing error rather than the edge a-b.
var sEdgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[^\s-]+`},
	{Name: "Dash", Pattern: `-`},
})

var sParseEdgeLine = participle.MustBuild[edgeLine](
	participle.Lexer(sEdgeLexer),
)
