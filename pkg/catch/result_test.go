package catch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry_Success(t *testing.T) {
	t.Parallel()

	res := Try(func() (int, error) { return 42, nil })

	assert.True(t, res.IsSuccess())
	assert.True(t, res.HasResult())
	assert.Equal(t, 42, res.Result())
	assert.NoError(t, res.Catch())
}

func TestTry_FailureDropsValue(t *testing.T) {
	t.Parallel()

	e := &ExampleError{msg: "try"}
	res := Try(func() (int, error) { return 7, e })

	require.True(t, res.HasError())
	assert.False(t, res.HasResult())
	assert.Equal(t, 0, res.Result())

	var got *ExampleError
	assert.NoError(t, res.Catch(On(func(err *ExampleError) { got = err })))
	assert.Same(t, e, got)
}

func TestTry_Panic(t *testing.T) {
	t.Parallel()

	res := Try(func() (string, error) { panic(errors.New("deep")) })

	assert.EqualError(t, res.Err(), "deep")
	assert.False(t, res.HasResult())
}

func TestTryContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := TryContext(ctx, func(ctx context.Context) (int, error) {
		return 1, ctx.Err()
	})

	assert.ErrorIs(t, res.Err(), context.Canceled)
}

func TestSuccessAndFail(t *testing.T) {
	t.Parallel()

	s := Success("ok")
	assert.True(t, s.HasResult())
	assert.Equal(t, "ok", s.Result())

	f := Fail[string](errors.New("no"))
	assert.True(t, f.HasError())
	assert.False(t, f.HasResult())
}

func TestFail_NilIsZeroSuccess(t *testing.T) {
	t.Parallel()

	res := Fail[int](nil)

	assert.True(t, res.IsSuccess())
	assert.True(t, res.HasResult())
	assert.Equal(t, 0, res.Result())
}
