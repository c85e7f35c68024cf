package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skx/sixc/ioruntime"
)

// TestBogusInput checks that each pipeline stage's errors surface
// through Compile.
func TestBogusInput(t *testing.T) {

	tests := []string{
		// lex error: literal out of range
		"var x = 256;",

		// lex error: unbalanced brackets
		"var x = (1 + 2;",

		// parse error: missing operand
		"var x = 1 + ;",

		// parse error: missing terminator after a block
		"while (1) { output(1); }",

		// semantic error: undeclared name
		"x = 1;",

		// semantic error: redeclaration
		"var x = 1; var x = 2;",
	}

	for _, test := range tests {
		c := New(test, ioruntime.Generic)
		_, err := c.Compile()
		assert.Error(t, err, "expected an error compiling %q", test)
	}
}

// TestValidPrograms checks that every construct in the language
// compiles without error and emits sane-looking assembly.
func TestValidPrograms(t *testing.T) {

	tests := []string{
		"",
		"var x = 10;",
		"var x = 10; var y = 5; var s = x + y; output(s);",
		"var x = 10; var y = 5; if (x > y) { output(1); } else { output(0); };",
		"var c = 0; while (c < 3) { c++; output(c); };",
		"var x = 3; do { output(x); x--; } while (x > 0);",
		"var a = 15; var b = 7; output(a & b); output(a | b); output(a ^ b);",
		"var x = 12; output(-x);",
		"var x = input(); output(x);",
	}

	for _, test := range tests {
		c := New(test, ioruntime.Py65mon)
		out, err := c.Compile()
		require.NoError(t, err, "compiling %q", test)
		assert.Contains(t, out, "processor 6502")
		assert.Contains(t, out, "BRK")
	}
}

// TestCompileIsDeterministic checks that compiling the same source
// twice (through two independent Compiler instances) is byte-for-byte
// identical.
func TestCompileIsDeterministic(t *testing.T) {
	src := "var c = 0; while (c < 5) { output(c); c++; };"

	first, err := New(src, ioruntime.Py65mon).Compile()
	require.NoError(t, err)

	second, err := New(src, ioruntime.Py65mon).Compile()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSymbolCount checks the façade exposes the declared-variable
// count after a successful compile.
func TestSymbolCount(t *testing.T) {
	c := New("var a = 1; var b = 2;", ioruntime.Generic)
	_, err := c.Compile()
	require.NoError(t, err)
	assert.Equal(t, 2, c.SymbolCount())
}

// TestDebugFlagAddsBanner checks that SetDebug changes the output.
func TestDebugFlagAddsBanner(t *testing.T) {
	src := "var a = 1;"

	c := New(src, ioruntime.Generic)
	plain, err := c.Compile()
	require.NoError(t, err)

	c = New(src, ioruntime.Generic)
	c.SetDebug(true)
	withDebug, err := c.Compile()
	require.NoError(t, err)

	assert.NotEqual(t, plain, withDebug)
	assert.True(t, strings.Contains(withDebug, "[debug]"))
}
