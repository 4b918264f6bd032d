package content

import "reflect"

func apply[T any](base T, overrides map[string]any) (T, error) {
	err := Merge(&base, overrides)
	return base, err
}

// fieldsOf returns every string value held by a content record.
func fieldsOf(v any) []string {
	rv := reflect.ValueOf(v)
	var out []string
	for i := range rv.NumField() {
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.String:
			out = append(out, f.String())
		case reflect.Slice:
			out = append(out, f.Interface().([]string)...)
		}
	}
	return out
}
