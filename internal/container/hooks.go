package container

import (
	"context"
	"reflect"

	"github.com/MKhiriev/go-contract-guard/models"
)

// TypeMatcher selects the instance types a provision listener is bound to.
type TypeMatcher interface {
	Matches(t reflect.Type) bool
}

// TypeMatcherFunc adapts a function to TypeMatcher.
type TypeMatcherFunc func(t reflect.Type) bool

func (f TypeMatcherFunc) Matches(t reflect.Type) bool { return f(t) }

// MethodMatcher selects the methods an interceptor is bound to.
type MethodMatcher interface {
	Matches(key models.MethodKey) bool
}

// MethodMatcherFunc adapts a function to MethodMatcher.
type MethodMatcherFunc func(key models.MethodKey) bool

func (f MethodMatcherFunc) Matches(key models.MethodKey) bool { return f(key) }

// AnyType matches every type.
func AnyType() TypeMatcher {
	return TypeMatcherFunc(func(reflect.Type) bool { return true })
}

// AnyMethod matches every method.
func AnyMethod() MethodMatcher {
	return MethodMatcherFunc(func(models.MethodKey) bool { return true })
}

// ProvisionListener is notified after an instance has been built and before
// it is handed to anyone. Returning an error rejects the instance.
type ProvisionListener interface {
	OnProvision(ctx context.Context, instance any) error
}

// ProvisionListenerFunc adapts a function to ProvisionListener.
type ProvisionListenerFunc func(ctx context.Context, instance any) error

func (f ProvisionListenerFunc) OnProvision(ctx context.Context, instance any) error {
	return f(ctx, instance)
}

// Proceed executes the real method body with args and yields its result.
type Proceed func(ctx context.Context, args []any) (any, error)

// MethodInterceptor wraps a method call. It receives the receiver, the
// method identity, the arguments and a Proceed running the rest of the chain.
type MethodInterceptor func(ctx context.Context, receiver any, method models.MethodKey, args []any, proceed Proceed) (any, error)

type listenerBinding struct {
	matcher  TypeMatcher
	listener ProvisionListener
}

type interceptorBinding struct {
	matcher     MethodMatcher
	interceptor MethodInterceptor
}
