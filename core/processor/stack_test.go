package processor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", errorMessage(errors.New("short")))
	assert.Equal(t, "exactly twenty chars", errorMessage(errors.New("exactly twenty chars")))
	assert.Equal(t, "twenty-one characte", errorMessage(errors.New("twenty-one characters")))
	assert.Equal(t, "ünïcödé-ünïcödé-ünï", errorMessage(errors.New("ünïcödé-ünïcödé-ünïcödé")))
}

func TestStackTrace(t *testing.T) {
	t.Parallel()

	t.Run("wrapped error keeps its cause", func(t *testing.T) {
		t.Parallel()
		base := errors.New("boom")
		err := withStack(base)

		assert.ErrorIs(t, err, base)
		assert.Equal(t, "*errors.errorString: boom", errorString(err))

		trace := stackTrace(err)
		lines := strings.Split(strings.TrimSuffix(trace, "\r\n"), "\r\n")
		require.Greater(t, len(lines), 1)
		assert.Equal(t, "*errors.errorString: boom", lines[0])
		for _, l := range lines[1:] {
			assert.True(t, strings.HasPrefix(l, "\t"), l)
			assert.True(t, strings.HasSuffix(l, ")"), l)
		}
	})

	t.Run("existing stack is not replaced", func(t *testing.T) {
		t.Parallel()
		pe := newPanicError("boom")
		assert.Same(t, pe, withStack(pe))
	})

	t.Run("panic error unwraps error values", func(t *testing.T) {
		t.Parallel()
		base := errors.New("nil map")
		pe := newPanicError(base)
		assert.ErrorIs(t, pe, base)
		assert.Equal(t, "panic: nil map", pe.Error())
		assert.Nil(t, newPanicError("text").Unwrap())
	})

	t.Run("no stack renders header only", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "*errors.errorString: plain\r\n", stackTrace(errors.New("plain")))
	})

	t.Run("runtime frames are dropped", func(t *testing.T) {
		t.Parallel()
		for _, f := range callers(1) {
			assert.False(t, strings.HasPrefix(f.Function, "runtime."), f.Function)
		}
	})
}
