package validation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-contract-guard/models"
)

func TestClassifier_IsStaticCandidate(t *testing.T) {
	c := NewClassifier(NewRegistry())

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{name: "constrained fields", typ: reflect.TypeFor[member](), want: true},
		{name: "pointer to constrained type", typ: reflect.TypeFor[*member](), want: true},
		{name: "constraint and cascade", typ: reflect.TypeFor[order](), want: true},
		{name: "cascade marker only", typ: reflect.TypeFor[cascadeOnly](), want: true},
		{name: "cascade marker switched off", typ: reflect.TypeFor[cascadeOff](), want: false},
		{name: "no constraints", typ: reflect.TypeFor[plain](), want: false},
		{name: "embedded constrained struct", typ: reflect.TypeFor[embedding](), want: false},
		{name: "not a struct", typ: reflect.TypeFor[string](), want: false},
		{name: "nil type", typ: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsStaticCandidate(tt.typ))
		})
	}
}

func TestClassifier_IsDynamicCandidate(t *testing.T) {
	c := NewClassifier(greeterContracts())
	key := func(name string) models.MethodKey {
		return models.NewMethodKey(reflect.TypeFor[*greeter](), name)
	}

	assert.True(t, c.IsDynamicCandidate(key("Greet")))
	assert.True(t, c.IsDynamicCandidate(key("Enroll")))
	assert.True(t, c.IsDynamicCandidate(key("Fail")))
	assert.False(t, c.IsDynamicCandidate(key("Ping")), "registered without constraints")
	assert.False(t, c.IsDynamicCandidate(key("Missing")), "not registered")
}

func TestClassifier_ConstrainedReturnOnly(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register(Method[greeter]("Greet").Unconstrained("name").Returns("required").Spec()))
	c := NewClassifier(r)

	assert.True(t, c.IsDynamicCandidate(models.NewMethodKey(reflect.TypeFor[greeter](), "Greet")))
}

func TestClassifier_ConstrainedLaterParameter(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register(Method[greeter]("Greet").Unconstrained("a").Unconstrained("b").Param("c", "required").Spec()))
	c := NewClassifier(r)

	assert.True(t, c.IsDynamicCandidate(models.NewMethodKey(reflect.TypeFor[greeter](), "Greet")))
}

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(greeterContracts())

	assert.Equal(t, models.Classification{Dynamic: true}, c.Classify(reflect.TypeFor[*greeter]()))
	assert.Equal(t, models.Classification{Static: true}, c.Classify(reflect.TypeFor[member]()))
	assert.Equal(t, models.Classification{}, c.Classify(reflect.TypeFor[plain]()))
	assert.True(t, c.IsDynamicTypeCandidate(reflect.TypeFor[greeter]()))
	assert.False(t, c.IsDynamicTypeCandidate(reflect.TypeFor[member]()))
}

func TestClassifier_MemoisedOnlyAfterSeal(t *testing.T) {
	r := NewRegistry()
	c := NewClassifier(r)
	greet := models.NewMethodKey(reflect.TypeFor[greeter](), "Greet")

	assert.False(t, c.IsDynamicCandidate(greet))
	assert.False(t, c.IsDynamicTypeCandidate(reflect.TypeFor[greeter]()))

	assert.NoError(t, r.Register(Method[greeter]("Greet").Param("name", "required").Spec()))
	r.Seal()

	assert.True(t, c.IsDynamicCandidate(greet))
	assert.True(t, c.IsDynamicTypeCandidate(reflect.TypeFor[greeter]()))

	_, cached := c.methods.Load(greet)
	assert.True(t, cached)
	_, cached = c.types.Load(reflect.TypeFor[greeter]())
	assert.True(t, cached)
}
