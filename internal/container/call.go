package container

import (
	"context"
	"fmt"
)

// Invoker dispatches method calls through bound interceptors.
type Invoker interface {
	Invoke(ctx context.Context, receiver any, method string, args []any, proceed Proceed) (any, error)
}

// Call0 dispatches a method without arguments returning R.
func Call0[R any](ctx context.Context, invoker Invoker, receiver any, method string, fn func(context.Context) (R, error)) (R, error) {
	result, err := invoker.Invoke(ctx, receiver, method, nil, func(ctx context.Context, _ []any) (any, error) {
		return fn(ctx)
	})
	return castResult[R](result, err)
}

// Call1 dispatches a method with one argument returning R.
func Call1[A, R any](ctx context.Context, invoker Invoker, receiver any, method string, a A, fn func(context.Context, A) (R, error)) (R, error) {
	result, err := invoker.Invoke(ctx, receiver, method, []any{a}, func(ctx context.Context, args []any) (any, error) {
		first, err := argument[A](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(ctx, first)
	})
	return castResult[R](result, err)
}

// Call2 dispatches a method with two arguments returning R.
func Call2[A, B, R any](ctx context.Context, invoker Invoker, receiver any, method string, a A, b B, fn func(context.Context, A, B) (R, error)) (R, error) {
	result, err := invoker.Invoke(ctx, receiver, method, []any{a, b}, func(ctx context.Context, args []any) (any, error) {
		first, err := argument[A](args, 0)
		if err != nil {
			return nil, err
		}
		second, err := argument[B](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(ctx, first, second)
	})
	return castResult[R](result, err)
}

func argument[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("%w: want index %d, got %d arguments", ErrMissingArgument, i, len(args))
	}
	if args[i] == nil {
		return zero, nil
	}
	value, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is %T", ErrUnexpectedType, i, args[i])
	}
	return value, nil
}

func castResult[R any](result any, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	value, ok := result.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedResult, result)
	}
	return value, nil
}
