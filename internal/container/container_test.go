package container

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

type repository struct {
	name string
}

type service struct {
	repo *repository
}

func (s *service) Hello(_ context.Context, name string) (string, error) {
	return "hello " + name, nil
}

type chicken struct{}
type egg struct{}

func TestProvideAndResolve(t *testing.T) {
	c := New(logger.Nop())
	builds := 0
	require.NoError(t, ProvideValue(c, &repository{name: "memory"}))
	require.NoError(t, Provide(c, func(ctx context.Context, c *Container) (*service, error) {
		builds++
		repo, err := Resolve[*repository](ctx, c)
		if err != nil {
			return nil, err
		}
		return &service{repo: repo}, nil
	}))

	first, err := Resolve[*service](context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "memory", first.repo.name)

	second, err := Resolve[*service](context.Background(), c)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestProvide_Errors(t *testing.T) {
	c := New(logger.Nop())

	assert.ErrorIs(t, Provide[*service](c, nil), ErrNilProvider)

	require.NoError(t, ProvideValue(c, &repository{}))
	assert.ErrorIs(t, ProvideValue(c, &repository{}), ErrDuplicateProvider)

	c.Seal()
	assert.ErrorIs(t, ProvideValue(c, &service{}), ErrContainerSealed)
	assert.ErrorIs(t, c.BindListener(AnyType(), ProvisionListenerFunc(func(context.Context, any) error { return nil })), ErrContainerSealed)
	assert.ErrorIs(t, c.BindInterceptor(AnyMethod(), nil), ErrContainerSealed)
}

func TestResolve_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no provider", func(t *testing.T) {
		_, err := Resolve[*service](ctx, New(logger.Nop()))
		assert.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("provider failure", func(t *testing.T) {
		c := New(logger.Nop())
		providerErr := errors.New("boom")
		require.NoError(t, Provide(c, func(context.Context, *Container) (*service, error) {
			return nil, providerErr
		}))

		_, err := Resolve[*service](ctx, c)
		assert.ErrorIs(t, err, ErrProvisionFailed)
		assert.ErrorIs(t, err, providerErr)
	})

	t.Run("dependency cycle", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, Provide(c, func(ctx context.Context, c *Container) (*chicken, error) {
			_, err := Resolve[*egg](ctx, c)
			return &chicken{}, err
		}))
		require.NoError(t, Provide(c, func(ctx context.Context, c *Container) (*egg, error) {
			_, err := Resolve[*chicken](ctx, c)
			return &egg{}, err
		}))

		_, err := Resolve[*chicken](ctx, c)
		assert.ErrorIs(t, err, ErrDependencyCycle)
		assert.True(t, strings.Contains(err.Error(), "*container.chicken -> *container.egg -> *container.chicken"))
	})

	t.Run("resolve seals", func(t *testing.T) {
		c := New(logger.Nop())
		_, _ = Resolve[*service](ctx, c)
		assert.ErrorIs(t, ProvideValue(c, &service{}), ErrContainerSealed)
	})
}

func TestListeners(t *testing.T) {
	ctx := context.Background()

	t.Run("matching listeners see every instance once", func(t *testing.T) {
		c := New(logger.Nop())
		var seen []string
		onlyRepos := TypeMatcherFunc(func(t reflect.Type) bool { return t == reflect.TypeFor[*repository]() })
		require.NoError(t, c.BindListener(onlyRepos, ProvisionListenerFunc(func(_ context.Context, instance any) error {
			seen = append(seen, instance.(*repository).name)
			return nil
		})))
		require.NoError(t, ProvideValue(c, &repository{name: "memory"}))
		require.NoError(t, ProvideValue(c, &service{}))

		for range 3 {
			_, err := Resolve[*repository](ctx, c)
			require.NoError(t, err)
		}
		_, err := Resolve[*service](ctx, c)
		require.NoError(t, err)

		assert.Equal(t, []string{"memory"}, seen)
	})

	t.Run("rejection aborts resolution", func(t *testing.T) {
		c := New(logger.Nop())
		rejected := errors.New("invalid repository")
		require.NoError(t, c.BindListener(AnyType(), ProvisionListenerFunc(func(context.Context, any) error {
			return rejected
		})))
		require.NoError(t, ProvideValue(c, &repository{}))

		repo, err := Resolve[*repository](ctx, c)
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, ErrProvisionRejected)
		assert.ErrorIs(t, err, rejected)

		repo, err = Resolve[*repository](ctx, c)
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, rejected)
	})

	t.Run("listener matched on dynamic type", func(t *testing.T) {
		c := New(logger.Nop())
		var matched []reflect.Type
		require.NoError(t, c.BindListener(TypeMatcherFunc(func(t reflect.Type) bool {
			matched = append(matched, t)
			return false
		}), ProvisionListenerFunc(func(context.Context, any) error { return nil })))
		require.NoError(t, ProvideValue[any](c, &repository{}))

		_, err := Resolve[any](ctx, c)
		require.NoError(t, err)
		assert.Equal(t, []reflect.Type{reflect.TypeFor[*repository]()}, matched)
	})
}

func TestResolve_Concurrent(t *testing.T) {
	c := New(logger.Nop())
	builds := 0
	require.NoError(t, Provide(c, func(context.Context, *Container) (*repository, error) {
		builds++
		return &repository{}, nil
	}))

	var wg sync.WaitGroup
	results := make([]*repository, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Resolve[*repository](context.Background(), c)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	t.Run("interceptors run in binding order", func(t *testing.T) {
		c := New(logger.Nop())
		var trace []string
		record := func(name string) MethodInterceptor {
			return func(ctx context.Context, _ any, _ models.MethodKey, args []any, proceed Proceed) (any, error) {
				trace = append(trace, name+" before")
				result, err := proceed(ctx, args)
				trace = append(trace, name+" after")
				return result, err
			}
		}
		require.NoError(t, c.BindInterceptor(AnyMethod(), record("outer")))
		require.NoError(t, c.BindInterceptor(AnyMethod(), record("inner")))

		result, err := c.Invoke(ctx, &service{}, "Hello", nil, func(context.Context, []any) (any, error) {
			trace = append(trace, "body")
			return "done", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "done", result)
		assert.Equal(t, []string{"outer before", "inner before", "body", "inner after", "outer after"}, trace)
	})

	t.Run("interceptor sees normalised method key and may short-circuit", func(t *testing.T) {
		c := New(logger.Nop())
		stop := errors.New("stop")
		var got models.MethodKey
		require.NoError(t, c.BindInterceptor(AnyMethod(), func(_ context.Context, _ any, method models.MethodKey, _ []any, _ Proceed) (any, error) {
			got = method
			return nil, stop
		}))

		_, err := c.Invoke(ctx, &service{}, "Hello", nil, func(context.Context, []any) (any, error) {
			t.Fatal("body must not run")
			return nil, nil
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, models.NewMethodKey(reflect.TypeFor[service](), "Hello"), got)
	})

	t.Run("unmatched method runs directly", func(t *testing.T) {
		c := New(logger.Nop())
		require.NoError(t, c.BindInterceptor(MethodMatcherFunc(func(key models.MethodKey) bool {
			return key.Name == "Other"
		}), func(context.Context, any, models.MethodKey, []any, Proceed) (any, error) {
			return nil, errors.New("must not run")
		}))

		result, err := c.Invoke(ctx, &service{}, "Hello", nil, func(context.Context, []any) (any, error) {
			return 1, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result)
	})
}
