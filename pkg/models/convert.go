package models

import "encoding/json"

// Field coercion helpers. The sqlite gateway hands back whatever the driver
// produced (string, int64, float64, []byte), so model converters go through
// these instead of direct type assertions.

func fieldString(fields map[string]any, name string) string {
	switch v := fields[name].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func fieldFloat(fields map[string]any, name string) float64 {
	switch v := fields[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func fieldInt(fields map[string]any, name string) int {
	switch v := fields[name].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// fieldBool reads sqlite's 0/1 integers as well as real booleans.
func fieldBool(fields map[string]any, name string) bool {
	switch v := fields[name].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// fieldStrings decodes a JSON-array text column (tags) into a slice.
func fieldStrings(fields map[string]any, name string) []string {
	raw := fieldString(fields, name)
	if raw == "" {
		return nil
	}
	var out []string
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}
