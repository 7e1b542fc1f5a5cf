// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/go-contract-guard/models"
)

// ConstraintTag is the struct tag holding field constraints.
const ConstraintTag = "validate"

// DefaultLocale is the locale of violation messages when none is configured.
const DefaultLocale = "en"

var timeType = reflect.TypeOf(time.Time{})

// PlaygroundEngine implements Engine and ExecutableEngine on top of
// go-playground/validator. Struct constraints are read from the `validate`
// tag. Violations inside a nested struct are reported only when every field
// leading to it carries a cascade marker (see [HasCascadeMarker]).
//
// A PlaygroundEngine is safe for concurrent use once constructed.
type PlaygroundEngine struct {
	validate    *validator.Validate
	translator  ut.Translator
	executables bool
}

// Option configures a PlaygroundEngine.
type Option func(*engineOptions)

type engineOptions struct {
	locale      string
	executables bool
}

// WithLocale selects the locale used for violation messages.
func WithLocale(locale string) Option {
	return func(o *engineOptions) {
		if locale != "" {
			o.locale = locale
		}
	}
}

// WithoutExecutables disables the method-level capability, making
// ForExecutables fail. Used when the host environment cannot support
// dynamic validation.
func WithoutExecutables() Option {
	return func(o *engineOptions) {
		o.executables = false
	}
}

// NewPlaygroundEngine constructs a PlaygroundEngine with message translations
// registered for the configured locale.
func NewPlaygroundEngine(opts ...Option) (*PlaygroundEngine, error) {
	options := engineOptions{locale: DefaultLocale, executables: true}
	for _, opt := range opts {
		opt(&options)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.SetTagName(ConstraintTag)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, found := uni.GetTranslator(options.locale)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, options.locale)
	}
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranslationRegistration, err)
	}

	return &PlaygroundEngine{
		validate:    validate,
		translator:  translator,
		executables: options.executables,
	}, nil
}

// Validate validates every constraint reachable from obj. When fields are
// given only those fields (namespaced relative to obj, e.g. "Address.City")
// are validated.
func (e *PlaygroundEngine) Validate(ctx context.Context, obj any, fields ...string) ([]models.Violation, error) {
	if obj == nil {
		return nil, ErrNilInstance
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, ErrNilInstance
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, value.Type())
	}

	var err error
	if len(fields) == 0 {
		err = e.validate.StructCtx(ctx, obj)
	} else {
		err = e.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return e.violations(value.Type(), value.Type(), "", err)
}

// ForExecutables returns e itself unless the capability was disabled.
func (e *PlaygroundEngine) ForExecutables() (ExecutableEngine, error) {
	if !e.executables {
		return nil, ErrExecutablesUnsupported
	}
	return e, nil
}

// violations converts the error returned by the underlying validator into
// violations owned by root. Paths are made relative to the validated value
// and prefixed by prefix. When validated is a struct type, violations not
// reachable from it through cascade-marked fields are dropped. Violation
// order is the order reported by the validator.
func (e *PlaygroundEngine) violations(root, validated reflect.Type, prefix string, err error) ([]models.Violation, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, fmt.Errorf("%w: %w", ErrEngineFailure, err)
	}

	rootName := ""
	if validated != nil {
		rootName = validated.Name()
	}

	result := make([]models.Violation, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		if validated != nil && !reachable(validated, relativeNamespace(rootName, fieldError.StructNamespace())) {
			continue
		}
		result = append(result, models.Violation{
			RootType:     root,
			Path:         joinPath(prefix, relativeNamespace(rootName, fieldError.Namespace())),
			InvalidValue: fieldError.Value(),
			Message:      e.message(fieldError),
			Constraint:   fieldError.Tag(),
		})
	}

	return result, nil
}

func (e *PlaygroundEngine) message(fieldError validator.FieldError) string {
	if e.translator == nil {
		return fieldError.Error()
	}
	return strings.TrimSpace(fieldError.Translate(e.translator))
}

// relativeNamespace strips the root struct name from a validator namespace:
// "Account.Address.City" becomes "Address.City". Unnamed root types have no
// segment of their own.
func relativeNamespace(rootName, namespace string) string {
	switch {
	case rootName == "":
		return namespace
	case namespace == rootName:
		return ""
	default:
		return strings.TrimPrefix(namespace, rootName+".")
	}
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	default:
		return prefix + "." + path
	}
}
