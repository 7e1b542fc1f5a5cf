package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

type member struct {
	Name  string `validate:"required"`
	Age   int    `validate:"gte=18"`
	Email string `validate:"required,email"`
}

type address struct {
	Street string `validate:"required"`
	City   string `validate:"required"`
	Zip    string `validate:"required,len=5"`
}

type order struct {
	Number   string   `validate:"required"`
	Shipping *address `validate:"required" cascade:""`
}

type plain struct {
	Name string
	Age  int
}

type cascadeOnly struct {
	Member member `cascade:""`
}

type cascadeOff struct {
	Member member `cascade:"-"`
}

type unmarkedNested struct {
	Member member
}

type embedding struct {
	member
	Note string
}

// greeter has one constrained method, one cascaded method and one method
// without constraints.
type greeter struct {
	calls int
}

func (g *greeter) Greet(_ context.Context, name string) (string, error) {
	g.calls++
	if name == "silent" {
		return "", nil
	}
	return "hello " + name, nil
}

func (g *greeter) Enroll(_ context.Context, m *member) (*member, error) {
	g.calls++
	return m, nil
}

func (g *greeter) Ping(context.Context) (string, error) {
	g.calls++
	return "pong", nil
}

var errBody = errors.New("body failed")

func (g *greeter) Fail(context.Context, string) (string, error) {
	g.calls++
	return "", errBody
}

func greeterContracts() *Registry {
	r := NewRegistry()
	if err := r.Register(
		Method[greeter]("Greet").Param("name", "required,min=3").Returns("required").Spec(),
		Method[greeter]("Enroll").CascadeParam("member", "required").CascadeReturn("").Spec(),
		Method[greeter]("Ping").Spec(),
		Method[greeter]("Fail").Param("name", "required").Spec(),
	); err != nil {
		panic(err)
	}
	return r
}

func newPlaygroundEngine(t *testing.T, opts ...validators.Option) *validators.PlaygroundEngine {
	t.Helper()
	engine, err := validators.NewPlaygroundEngine(opts...)
	require.NoError(t, err)
	return engine
}

func newTestService(t *testing.T, engine validators.Engine, registry *Registry, cfg config.Validation) *Service {
	t.Helper()
	return NewService(engine, registry, cfg, logger.Nop())
}
