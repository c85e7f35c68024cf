package ioruntime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tgt, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Generic, tgt)

	tgt, err = Parse("generic")
	require.NoError(t, err)
	assert.Equal(t, Generic, tgt)

	tgt, err = Parse("py65mon")
	require.NoError(t, err)
	assert.Equal(t, Py65mon, tgt)

	_, err = Parse("bogus")
	require.Error(t, err)
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "py65mon", Py65mon.String())
}

func TestRuntimeContainsBothRoutines(t *testing.T) {
	for _, target := range []Target{Generic, Py65mon} {
		text := Runtime(target)
		assert.Contains(t, text, "output_routine:")
		assert.Contains(t, text, "input_routine:")
		assert.Contains(t, text, "$F001")
		assert.Contains(t, text, "$F004")
	}
}

// TestPy65monAccumulatesMultipleDigits checks the py65mon input
// routine's distinguishing feature versus the generic one: it loops
// reading digits until a terminator, rather than reading exactly one.
func TestPy65monAccumulatesMultipleDigits(t *testing.T) {
	text := Runtime(Py65mon)
	assert.Contains(t, text, "input_poll")
	assert.Contains(t, text, "input_mul10")

	generic := Runtime(Generic)
	assert.NotContains(t, generic, "input_poll")
}

func TestRuntimeHasNoDuplicateLabels(t *testing.T) {
	for _, target := range []Target{Generic, Py65mon} {
		seen := map[string]bool{}
		for _, line := range strings.Split(Runtime(target), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
				require.False(t, seen[line], "duplicate label %q", line)
				seen[line] = true
			}
		}
	}
}
