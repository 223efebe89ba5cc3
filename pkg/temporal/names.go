package temporal

import (
	"reflect"
	"runtime"
	"strings"
)

// NameOf gives a readable identifier for a workflow function or activity value.
// Functions resolve to their symbol name the way the SDK derives default
// registration names; other values to their type name.
func NameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		fn := runtime.FuncForPC(rv.Pointer())
		if fn == nil {
			return rv.Type().String()
		}
		name := fn.Name()
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		return strings.TrimSuffix(name, "-fm")
	}
	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
