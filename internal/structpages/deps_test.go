package structpages

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestDeps_lookup(t *testing.T) {
	d := newDeps()
	c := &counter{n: 7}
	for _, v := range []any{c, english{}, strings.NewReader("x"), nil} {
		if err := d.add(v); err != nil {
			t.Fatalf("add(%T) failed: %v", v, err)
		}
	}
	if err := d.add(&counter{}); err == nil {
		t.Error("expected duplicate type error")
	}

	tests := []struct {
		name string
		want reflect.Type
		ok   bool
	}{
		{name: "exact pointer", want: reflect.TypeFor[*counter](), ok: true},
		{name: "value from pointer", want: reflect.TypeFor[counter](), ok: true},
		{name: "interface", want: reflect.TypeFor[greeter](), ok: true},
		{name: "stdlib interface", want: reflect.TypeFor[io.Reader](), ok: true},
		{name: "missing", want: reflect.TypeFor[int](), ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := d.lookup(tt.want)
			if ok != tt.ok {
				t.Fatalf("lookup(%s) ok = %v, want %v", tt.want, ok, tt.ok)
			}
			if ok && !v.Type().AssignableTo(tt.want) {
				t.Errorf("lookup(%s) returned %s", tt.want, v.Type())
			}
		})
	}

	v, _ := d.lookup(reflect.TypeFor[counter]())
	if got := v.Interface().(counter).n; got != 7 {
		t.Errorf("expected dereferenced counter 7, got %d", got)
	}
}
