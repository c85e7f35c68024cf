package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmptyOnCreation checks that a freshly-built stack reports itself
// as empty, and stops doing so as soon as anything is pushed onto it.
func TestEmptyOnCreation(t *testing.T) {
	s := New[string]()
	assert.True(t, s.Empty())

	s.Push("33")
	assert.False(t, s.Empty())
}

// TestPopPushSequence drives a stack through several push/pop cycles,
// checking LIFO order holds and that the stack reports empty again
// once everything has been drained.
func TestPopPushSequence(t *testing.T) {
	s := New[string]()

	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}

	for _, want := range []string{"c", "b", "a"} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.True(t, s.Empty())
}

// TestPopOnEmptyReturnsErrEmpty checks that draining past the bottom
// of the stack reports ErrEmpty rather than panicking or returning a
// zero value silently.
func TestPopOnEmptyReturnsErrEmpty(t *testing.T) {
	s := New[string]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

// TestPeekLeavesTopInPlace checks that Peek reports the most recently
// pushed value without removing it.
func TestPeekLeavesTopInPlace(t *testing.T) {
	s := New[rune]()

	s.Push('(')
	s.Push('{')

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, '{', top)
	assert.False(t, s.Empty())
}

// TestPeekOnEmptyReturnsErrEmpty checks that peeking a stack with
// nothing on it reports ErrEmpty rather than a zero value.
func TestPeekOnEmptyReturnsErrEmpty(t *testing.T) {
	s := New[int]()

	_, err := s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
}
