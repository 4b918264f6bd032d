package content

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKey is returned for an override key no field is tagged with.
	ErrUnknownKey = errors.New("unknown content key")
	// ErrInvalidValue is returned when an override has the wrong type or index.
	ErrInvalidValue = errors.New("invalid content value")
)

// Merge applies overrides to the struct dst points to. Each key names a field
// by its editable tag. A list field takes either a whole list or a single item
// through an indexed key such as "features[2]".
//
// Overrides are applied to a copy that replaces *dst only if every key
// succeeds, so a failed merge leaves dst untouched. Lists are cloned before an
// item is replaced and never share storage with the value merged from.
func Merge(dst any, overrides map[string]any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("content: merge target must be a non-nil struct pointer, got %T", dst)
	}
	work := reflect.New(rv.Elem().Type()).Elem()
	work.Set(rv.Elem())
	cloneLists(work)

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if err := setKey(work, key, overrides[key]); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	rv.Elem().Set(work)
	return nil
}

// Keys lists the editable keys of a content record in field order.
func Keys(v any) []string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var keys []string
	for i := range t.NumField() {
		if key := t.Field(i).Tag.Get("editable"); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func cloneLists(v reflect.Value) {
	for i := range v.NumField() {
		f := v.Field(i)
		if f.Kind() == reflect.Slice && !f.IsNil() {
			c := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
			reflect.Copy(c, f)
			f.Set(c)
		}
	}
}

func setKey(v reflect.Value, key string, value any) error {
	name, index, indexed, err := splitKey(key)
	if err != nil {
		return err
	}
	f, ok := fieldByKey(v, name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	switch {
	case indexed:
		if f.Kind() != reflect.Slice {
			return fmt.Errorf("%w: %q is not a list", ErrInvalidValue, name)
		}
		if index >= f.Len() {
			return fmt.Errorf("%w: %q has %d items", ErrInvalidValue, key, f.Len())
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %q wants a string, got %T", ErrInvalidValue, key, value)
		}
		f.Index(index).SetString(s)
	case f.Kind() == reflect.String:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %q wants a string, got %T", ErrInvalidValue, key, value)
		}
		f.SetString(s)
	case f.Kind() == reflect.Slice:
		list, err := stringList(value)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidValue, key, err)
		}
		f.Set(reflect.ValueOf(list))
	default:
		return fmt.Errorf("%w: %q has unsupported kind %s", ErrInvalidValue, key, f.Kind())
	}
	return nil
}

// splitKey splits "features[2]" into "features" and 2.
func splitKey(key string) (name string, index int, indexed bool, err error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, 0, false, nil
	}
	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", 0, false, fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	index, err = strconv.Atoi(key[open+1 : len(key)-1])
	if err != nil || index < 0 {
		return "", 0, false, fmt.Errorf("%w: bad index in %q", ErrInvalidValue, key)
	}
	return key[:open], index, true, nil
}

func fieldByKey(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := range t.NumField() {
		if t.Field(i).Tag.Get("editable") == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func stringList(value any) ([]string, error) {
	switch list := value.(type) {
	case []string:
		return slices.Clone(list), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, not a string", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("want a list of strings, got %T", value)
}
