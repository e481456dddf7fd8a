package testsuite

import (
	"fmt"
	"math"
	"time"

	"github.com/parsekit/toml"
)

type tagged map[string]string

// addTag rewrites a decoded tree into toml-test's tagged form: tables
// and arrays keep their shape while each scalar becomes a
// {"type": ..., "value": ...} object with the value rendered as a
// string.
func addTag(key string, v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, child := range v {
			m[k] = addTag(k, child)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(v))
		for i, child := range v {
			a[i] = addTag("", child)
		}
		return a
	case string:
		return tagged{"type": "string", "value": v}
	case bool:
		return tagged{"type": "bool", "value": fmt.Sprintf("%v", v)}
	case int64:
		return tagged{"type": "integer", "value": fmt.Sprintf("%d", v)}
	case float64:
		return tagged{"type": "float", "value": formatFloat(v)}
	case time.Time:
		return tagged{"type": "datetime", "value": v.Format("2006-01-02T15:04:05.999999999Z07:00")}
	case toml.LocalDateTime:
		return tagged{"type": "datetime-local", "value": v.LocalDate.String() + "T" + v.LocalTime.String()}
	case toml.LocalDate:
		return tagged{"type": "date-local", "value": v.String()}
	case toml.LocalTime:
		return tagged{"type": "time-local", "value": v.String()}
	}
	panic(fmt.Sprintf("unexpected value %v (%T) for key %q", v, v, key))
}

// formatFloat renders f the way toml-test expects, with the special
// values spelled in lowercase.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%v", f)
	}
}
