package folparser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var folLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(all|exists)\b`},
	{Name: "Punct", Pattern: `<->|->|==|[()&|.,-]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// FormulaAST is the top-level grammar node: exactly one of its fields is
// populated, dispatching on the leading token the same way the teacher's
// StatementAST/QueryAST do.
type FormulaAST struct {
	All      *QuantifierAST `parser:"  \"all\" @@"`
	Exists   *QuantifierAST `parser:"| \"exists\" @@"`
	Negated  *FormulaAST    `parser:"| \"-\" @@"`
	Binary   *BinaryAST     `parser:"| \"(\" @@ \")\""`
	Equality *EqualityAST   `parser:"| @@"`
	Atom     *AtomAST       `parser:"| @@"`
}

// QuantifierAST: "<var> . <body>", following the binder keyword.
type QuantifierAST struct {
	Var  string      `parser:"@Ident \".\""`
	Body *FormulaAST `parser:"@@"`
}

// BinaryAST: "<left> <op> <right>", the inside of a parenthesized formula.
type BinaryAST struct {
	Left  *FormulaAST `parser:"@@"`
	Op    string      `parser:"@( \"&\" | \"|\" | \"->\" | \"<->\" )"`
	Right *FormulaAST `parser:"@@"`
}

// EqualityAST: "<left> == <right>".
type EqualityAST struct {
	Left  string `parser:"@Ident \"==\""`
	Right string `parser:"@Ident"`
}

// AtomAST: "<pred>(<arg>, <arg>, ...)", arguments optional (a 0-ary atom).
type AtomAST struct {
	Pred string   `parser:"@Ident \"(\""`
	Args []string `parser:"( @Ident ( \",\" @Ident )* )? \")\""`
}

var formulaParser = participle.MustBuild[FormulaAST](
	participle.Lexer(folLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
)
