// Package compiler is the front door to the pipeline: it wires the
// lexer, parser, semantic analyzer, and code generator together and
// exposes the three-function API a caller needs.
//
// In brief this goes through a four-step process:
//
//  1. Lex the source text into a stream of tokens.
//
//  2. Parse the tokens into a precedence-correct statement/expression
//     tree.
//
//  3. Walk the tree, binding every variable reference to a zero-page
//     slot address.
//
//  4. Walk the annotated tree again, emitting DASM-syntax 6502
//     assembly, followed by the target's I/O runtime.
//
// Each stage can fail; failure halts the pipeline immediately and the
// error is wrapped with the stage that produced it, so a caller can
// tell at a glance whether a bad program failed to lex, parse,
// type-check, or (in principle, though it should never happen given a
// semantically-valid tree) generate code.
package compiler

import (
	"github.com/pkg/errors"

	"github.com/skx/sixc/ast"
	"github.com/skx/sixc/codegen"
	"github.com/skx/sixc/ioruntime"
	"github.com/skx/sixc/lexer"
	"github.com/skx/sixc/parser"
	"github.com/skx/sixc/sema"
)

// Compiler holds our object-state.
type Compiler struct {

	// debug holds a flag to decide if debugging "stuff" is generated
	// in the output assembly.
	debug bool

	// source holds the program text we're compiling.
	source string

	// target selects which I/O runtime the generated program links
	// against.
	target ioruntime.Target

	// program holds the parsed, analyzed tree, once Compile has run.
	program *ast.Program

	// symbols holds the symbol table produced by semantic analysis.
	symbols *sema.SymbolTable
}

// New creates a new compiler for the given source text, targeting the
// given I/O runtime.
func New(source string, target ioruntime.Target) *Compiler {
	return &Compiler{source: source, target: target}
}

// SetDebug changes the debug-flag for our output.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
}

// SymbolCount returns the number of variables declared by the last
// successful Compile call, or zero if Compile has not yet succeeded.
func (c *Compiler) SymbolCount() int {
	if c.symbols == nil {
		return 0
	}
	return c.symbols.Len()
}

// Compile runs the full pipeline and returns the generated 6502
// assembly text, in DASM syntax.
func (c *Compiler) Compile() (string, error) {
	tokens, err := lexer.Tokenize(c.source)
	if err != nil {
		return "", errors.Wrap(err, "lexing")
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return "", errors.Wrap(err, "parsing")
	}

	symbols, err := sema.Analyze(prog)
	if err != nil {
		return "", errors.Wrap(err, "semantic analysis")
	}

	gen := codegen.New(c.target)
	gen.SetDebug(c.debug)

	out, err := gen.Generate(prog)
	if err != nil {
		return "", errors.Wrap(err, "code generation")
	}

	c.program = prog
	c.symbols = symbols
	return out, nil
}
