// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

// Container holds providers, provision listeners and method interceptors.
type Container struct {
	mu           sync.RWMutex
	bindings     map[reflect.Type]*binding
	listeners    []listenerBinding
	interceptors []interceptorBinding
	sealed       atomic.Bool

	// chains memoises the interceptor chain of every method dispatched so far.
	chains sync.Map // models.MethodKey -> []MethodInterceptor

	logger *logger.Logger
}

type binding struct {
	typ     reflect.Type
	provide func(ctx context.Context, c *Container) (any, error)

	once     sync.Once
	instance any
	err      error
}

// New creates an empty Container.
func New(logger *logger.Logger) *Container {
	return &Container{
		bindings: make(map[reflect.Type]*binding),
		logger:   logger,
	}
}

// Provide registers provider as the singleton source of T.
func Provide[T any](c *Container, provider func(ctx context.Context, c *Container) (T, error)) error {
	if provider == nil {
		return ErrNilProvider
	}

	typ := reflect.TypeFor[T]()
	return c.register(typ, func(ctx context.Context, c *Container) (any, error) {
		return provider(ctx, c)
	})
}

// ProvideValue registers an already built value as the singleton T. The
// value still goes through provision listeners on first resolution.
func ProvideValue[T any](c *Container, value T) error {
	return Provide(c, func(context.Context, *Container) (T, error) {
		return value, nil
	})
}

// Resolve returns the singleton T, building and provisioning it on first use.
func Resolve[T any](ctx context.Context, c *Container) (T, error) {
	var zero T

	typ := reflect.TypeFor[T]()
	instance, err := c.resolve(ctx, typ)
	if err != nil {
		return zero, err
	}

	value, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %T", ErrUnexpectedType, typ, instance)
	}
	return value, nil
}

// BindListener binds listener to every provisioned instance whose dynamic
// type satisfies matcher.
func (c *Container) BindListener(matcher TypeMatcher, listener ProvisionListener) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed.Load() {
		return ErrContainerSealed
	}
	c.listeners = append(c.listeners, listenerBinding{matcher: matcher, listener: listener})
	return nil
}

// BindInterceptor binds interceptor to every method satisfying matcher.
// Interceptors run in binding order, the first bound being the outermost.
func (c *Container) BindInterceptor(matcher MethodMatcher, interceptor MethodInterceptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed.Load() {
		return ErrContainerSealed
	}
	c.interceptors = append(c.interceptors, interceptorBinding{matcher: matcher, interceptor: interceptor})
	return nil
}

// Seal freezes the container configuration. After Seal no provider,
// listener or interceptor can be added and the bindings are only read.
func (c *Container) Seal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed.CompareAndSwap(false, true) {
		c.logger.Debug().
			Int("bindings", len(c.bindings)).
			Int("listeners", len(c.listeners)).
			Int("interceptors", len(c.interceptors)).
			Msg("container sealed")
	}
}

func (c *Container) register(typ reflect.Type, provide func(ctx context.Context, c *Container) (any, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed.Load() {
		return ErrContainerSealed
	}
	if _, exists := c.bindings[typ]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, typ)
	}

	c.bindings[typ] = &binding{typ: typ, provide: provide}
	return nil
}

func (c *Container) resolve(ctx context.Context, typ reflect.Type) (any, error) {
	c.Seal()

	b, ok := c.bindings[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProvider, typ)
	}

	path := resolutionPath(ctx)
	for _, t := range path {
		if t == typ {
			return nil, fmt.Errorf("%w: %s", ErrDependencyCycle, formatPath(append(path, typ)))
		}
	}

	b.once.Do(func() {
		b.instance, b.err = c.build(withResolutionPath(ctx, typ), b)
	})

	return b.instance, b.err
}

// build runs the provider and then every matching provision listener. The
// instance is discarded when any listener rejects it.
func (c *Container) build(ctx context.Context, b *binding) (any, error) {
	instance, err := b.provide(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProvisionFailed, b.typ, err)
	}

	instanceType := reflect.TypeOf(instance)
	for _, lb := range c.listeners {
		if instanceType == nil || !lb.matcher.Matches(instanceType) {
			continue
		}
		if err := lb.listener.OnProvision(ctx, instance); err != nil {
			c.logger.Error().Err(err).Str("type", b.typ.String()).Msg("provisioned instance rejected")
			return nil, fmt.Errorf("%w: %s: %w", ErrProvisionRejected, b.typ, err)
		}
	}

	c.logger.Debug().Str("type", b.typ.String()).Msg("instance provisioned")
	return instance, nil
}

// Invoke dispatches a call of method on receiver through the interceptors
// bound to it; proceed runs the real method body.
func (c *Container) Invoke(ctx context.Context, receiver any, method string, args []any, proceed Proceed) (any, error) {
	key := models.NewMethodKey(reflect.TypeOf(receiver), method)

	call := proceed
	chain := c.chain(key)
	for i := len(chain) - 1; i >= 0; i-- {
		interceptor, next := chain[i], call
		call = func(ctx context.Context, args []any) (any, error) {
			return interceptor(ctx, receiver, key, args, next)
		}
	}

	return call(ctx, args)
}

func (c *Container) chain(key models.MethodKey) []MethodInterceptor {
	if cached, ok := c.chains.Load(key); ok {
		return cached.([]MethodInterceptor)
	}

	c.Seal()

	var chain []MethodInterceptor
	for _, ib := range c.interceptors {
		if ib.matcher.Matches(key) {
			chain = append(chain, ib.interceptor)
		}
	}

	actual, _ := c.chains.LoadOrStore(key, chain)
	return actual.([]MethodInterceptor)
}
