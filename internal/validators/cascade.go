package validators

import (
	"reflect"
	"strings"
)

// CascadeTag marks a field whose value is validated recursively.
const CascadeTag = "cascade"

// HasCascadeMarker reports whether the field carrying tag is validated
// recursively: its cascade tag is present and is neither "-" nor "false", or
// its constraints contain a dive rule.
func HasCascadeMarker(tag reflect.StructTag) bool {
	if value, ok := tag.Lookup(CascadeTag); ok {
		value = strings.TrimSpace(value)
		if value != "-" && value != "false" {
			return true
		}
	}

	for _, rule := range strings.Split(tag.Get(ConstraintTag), ",") {
		if strings.TrimSpace(rule) == "dive" {
			return true
		}
	}
	return false
}

// reachable reports whether the violation at structPath (a validator struct
// namespace relative to root) is reached from root through cascade-marked
// fields only. The last segment is the violated field itself and needs no
// marker. Paths that cannot be resolved against root are kept.
func reachable(root reflect.Type, structPath string) bool {
	segments := splitNamespace(structPath)
	if len(segments) <= 1 {
		return true
	}

	current := root
	for _, segment := range segments[:len(segments)-1] {
		name, indexes := splitIndexes(segment)

		current = derefType(current)
		if current.Kind() != reflect.Struct {
			return true
		}
		field, ok := current.FieldByName(name)
		if !ok {
			return true
		}
		if !HasCascadeMarker(field.Tag) {
			return false
		}

		current = field.Type
		for range indexes {
			current = derefType(current)
			switch current.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				current = current.Elem()
			default:
				return true
			}
		}
	}
	return true
}

// splitNamespace splits "Order.Items[a.b].Name" on dots outside brackets.
func splitNamespace(namespace string) []string {
	if namespace == "" {
		return nil
	}

	var segments []string
	depth, start := 0, 0
	for i, r := range namespace {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				segments = append(segments, namespace[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, namespace[start:])
}

// splitIndexes splits "Matrix[0][1]" into "Matrix" and its two index groups.
func splitIndexes(segment string) (string, int) {
	name, rest, found := strings.Cut(segment, "[")
	if !found {
		return name, 0
	}

	indexes, depth := 1, 1
	for _, r := range rest {
		switch r {
		case '[':
			if depth == 0 {
				indexes++
			}
			depth++
		case ']':
			depth--
		}
	}
	return name, indexes
}

func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
