package profit

import (
	"encoding/json"
	"fmt"
)

// Record is one element of result.simplemultialgo. Only the name is checked
// during navigation; price and port are checked once the record matches.
type Record struct {
	Name   string
	Fields map[string]any
}

// navigate walks {result: {simplemultialgo: [{name, ...}, ...]}}. One bad
// element rejects the whole response.
func navigate(tree any) ([]Record, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, invalid("$", "expected object, got %s", typeName(tree))
	}

	resultVal, ok := root["result"]
	if !ok {
		return nil, invalid("result", "missing")
	}
	result, ok := resultVal.(map[string]any)
	if !ok {
		return nil, invalid("result", "expected object, got %s", typeName(resultVal))
	}

	listVal, ok := result["simplemultialgo"]
	if !ok {
		// {"result": {"error": "..."}} is how the service reports outages.
		if msg, isStr := result["error"].(string); isStr {
			return nil, invalid("result.simplemultialgo", "missing, remote reported %q", msg)
		}
		return nil, invalid("result.simplemultialgo", "missing")
	}
	list, ok := listVal.([]any)
	if !ok {
		return nil, invalid("result.simplemultialgo", "expected array, got %s", typeName(listVal))
	}

	records := make([]Record, 0, len(list))
	for i, elem := range list {
		path := fmt.Sprintf("result.simplemultialgo[%d]", i)
		fields, ok := elem.(map[string]any)
		if !ok {
			return nil, invalid(path, "expected object, got %s", typeName(elem))
		}
		name, err := field[string](fields, path, "name")
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Name: name, Fields: fields})
	}
	return records, nil
}

// field extracts a required, typed value from an object.
func field[T any](obj map[string]any, path, key string) (T, error) {
	var zero T
	v, ok := obj[key]
	if !ok {
		return zero, invalid(path+"."+key, "missing")
	}
	t, ok := v.(T)
	if !ok {
		return zero, invalid(path+"."+key, "expected %s, got %s", typeName(zero), typeName(v))
	}
	return t, nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
