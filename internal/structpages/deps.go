package structpages

import (
	"fmt"
	"reflect"
)

// deps holds the values passed to MountPages, keyed by their dynamic type.
// Lookups fall back to interface assignability in registration order.
type deps struct {
	byType map[reflect.Type]reflect.Value
	order  []reflect.Type
}

func newDeps() *deps {
	return &deps{byType: make(map[reflect.Type]reflect.Value)}
}

func (d *deps) add(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := d.byType[typ]; ok {
		return fmt.Errorf("duplicate type %s in dependencies", typ)
	}
	d.byType[typ] = reflect.ValueOf(v)
	d.order = append(d.order, typ)
	return nil
}

func (d *deps) lookup(want reflect.Type) (reflect.Value, bool) {
	if d == nil {
		return reflect.Value{}, false
	}
	if v, ok := d.byType[want]; ok {
		return v, true
	}
	// a registered *T satisfies a T parameter
	if want.Kind() != reflect.Ptr {
		if v, ok := d.byType[reflect.PointerTo(want)]; ok && !v.IsNil() {
			return v.Elem(), true
		}
	}
	for _, typ := range d.order {
		if typ.AssignableTo(want) {
			return d.byType[typ], true
		}
	}
	return reflect.Value{}, false
}
