package container

import (
	"context"
	"reflect"
	"strings"
)

type resolutionPathKey struct{}

func resolutionPath(ctx context.Context) []reflect.Type {
	path, _ := ctx.Value(resolutionPathKey{}).([]reflect.Type)
	return path
}

func withResolutionPath(ctx context.Context, typ reflect.Type) context.Context {
	path := resolutionPath(ctx)
	next := make([]reflect.Type, 0, len(path)+1)
	next = append(next, path...)
	next = append(next, typ)
	return context.WithValue(ctx, resolutionPathKey{}, next)
}

func formatPath(path []reflect.Type) string {
	names := make([]string, 0, len(path))
	for _, t := range path {
		names = append(names, t.String())
	}
	return strings.Join(names, " -> ")
}
