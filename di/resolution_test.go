package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// push / pop / Path
// -----------------------------------------------------------------------------

// TestResolution_PushPopPath verifies the chain records construction frames in
// order and Path returns them outermost first.
func TestResolution_PushPopPath(t *testing.T) {
	t.Parallel()

	r := newResolution()
	assert.True(t, r.alive())
	assert.Empty(t, r.Path())

	r.push("a")
	r.push("b")
	assert.Equal(t, []string{"a", "b"}, r.Path())

	r.pop()
	assert.Equal(t, []string{"a"}, r.Path())

	r.pop()
	assert.Empty(t, r.Path())
}

// TestResolution_PathIsACopy verifies mutating the returned slice does not
// touch the chain.
func TestResolution_PathIsACopy(t *testing.T) {
	t.Parallel()

	r := newResolution()
	r.push("a")

	p := r.Path()
	p[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.Path())
}

// TestResolution_PopOnEmptyIsNoOp verifies popping an empty chain does not
// panic or underflow.
func TestResolution_PopOnEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	r := newResolution()
	r.pop()
	assert.Empty(t, r.Path())
}

//
// -----------------------------------------------------------------------------
// pathTo
// -----------------------------------------------------------------------------

// TestResolution_PathTo verifies pathTo appends the re-entered cell without
// mutating the chain itself.
func TestResolution_PathTo(t *testing.T) {
	t.Parallel()

	r := newResolution()
	r.push("a")
	r.push("b")

	assert.Equal(t, []string{"a", "b", "a"}, r.pathTo("a"))
	assert.Equal(t, []string{"a", "b"}, r.Path())
}

//
// -----------------------------------------------------------------------------
// finish / alive
// -----------------------------------------------------------------------------

// TestResolution_FinishKillsChain verifies a finished chain is no longer
// alive, and a nil chain never is.
func TestResolution_FinishKillsChain(t *testing.T) {
	t.Parallel()

	r := newResolution()
	assert.True(t, r.alive())

	r.finish()
	assert.False(t, r.alive())

	var nilChain *Resolution
	assert.False(t, nilChain.alive())
}
