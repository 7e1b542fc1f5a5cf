package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

// rewriting replaces every argument with the given values.
func rewriting(values ...any) MethodInterceptor {
	return func(ctx context.Context, _ any, _ models.MethodKey, _ []any, proceed Proceed) (any, error) {
		return proceed(ctx, values)
	}
}

// returning short-circuits the call with result.
func returning(result any) MethodInterceptor {
	return func(context.Context, any, models.MethodKey, []any, Proceed) (any, error) {
		return result, nil
	}
}

func TestCall1(t *testing.T) {
	ctx := context.Background()
	s := &service{}

	t.Run("no interceptors", func(t *testing.T) {
		out, err := Call1(ctx, New(logger.Nop()), s, "Hello", "ann", s.Hello)
		require.NoError(t, err)
		assert.Equal(t, "hello ann", out)
	})

	t.Run("arguments passed by the chain", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), rewriting("bob")))

		out, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		require.NoError(t, err)
		assert.Equal(t, "hello bob", out)
	})

	t.Run("argument of wrong type", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), rewriting(42)))

		_, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		assert.ErrorIs(t, err, ErrUnexpectedType)
	})

	t.Run("missing argument", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), rewriting()))

		_, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		assert.ErrorIs(t, err, ErrMissingArgument)
	})

	t.Run("nil argument becomes zero value", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), rewriting(nil)))

		out, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		require.NoError(t, err)
		assert.Equal(t, "hello ", out)
	})

	t.Run("result of wrong type", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), returning(42)))

		_, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		assert.ErrorIs(t, err, ErrUnexpectedResult)
	})

	t.Run("nil result becomes zero value", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(AnyMethod(), returning(nil)))

		out, err := Call1(ctx, c, s, "Hello", "ann", s.Hello)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestCall0AndCall2(t *testing.T) {
	ctx := context.Background()
	c := New(logger.Nop())
	s := &service{}

	out, err := Call0(ctx, c, s, "Ping", func(context.Context) (string, error) {
		return "pong", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "pong", out)

	sum, err := Call2(ctx, c, s, "Add", 2, 3, func(_ context.Context, a, b int) (int, error) {
		return a + b, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, sum)
}
