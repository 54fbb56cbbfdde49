package di_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/sghaida/wirebox/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinding_DefaultServesCalls(t *testing.T) {
	t.Parallel()

	b := di.NewBinding("formatter", func(p int) (string, error) {
		return strconv.Itoa(p), nil
	}, nil)

	assert.Equal(t, "formatter", b.Name())
	assert.False(t, b.Overridden())

	got, err := b.Call(7)
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}

func TestNewBinding_OverrideWinsEveryCall(t *testing.T) {
	t.Parallel()

	defCalls, ovCalls := 0, 0
	def := func(int) (string, error) {
		defCalls++
		return "default", nil
	}
	override := func(int) (string, error) {
		ovCalls++
		return "override", nil
	}

	b := di.NewBinding("formatter", def, override)
	assert.True(t, b.Overridden())

	for i := 0; i < 3; i++ {
		got, err := b.Call(i)
		require.NoError(t, err)
		assert.Equal(t, "override", got)
	}

	// the default is never consulted while an override is present
	assert.Equal(t, 0, defCalls)
	assert.Equal(t, 3, ovCalls)

	got, err := b.Effective()(9)
	require.NoError(t, err)
	assert.Equal(t, "override", got)
	assert.Equal(t, 4, ovCalls)
}

func TestNewBinding_NilDefaultPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, di.NilFactoryError{Name: "formatter"}, func() {
		_ = di.NewBinding[int, string]("formatter", nil, nil)
	})
}

func TestBinding_CallPropagatesFactoryError(t *testing.T) {
	t.Parallel()

	boom := errors.New("no formatter configured")
	b := di.NewBinding("formatter", func(int) (string, error) {
		return "", boom
	}, nil)

	_, err := b.Call(1)
	require.Error(t, err)
	assert.Same(t, boom, err)
}
