package monads

import (
	"reflect"

	"github.com/samber/lo"
)

// IsNil reports whether v is an absent marker: untyped nil or a nil
// pointer, map, slice, channel, func or interface.
func IsNil(v any) bool {
	return lo.IsNil(v)
}

// Equal compares two payloads covariantly. a and b are equal when the
// dynamic type of one is assignable to the other and the narrower value
// considers the wider one equal. Static type parameters play no part, so a
// value boxed as int and the same value boxed as any compare equal.
func Equal(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b) && reflect.TypeOf(a) == reflect.TypeOf(b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case vb.Type().AssignableTo(va.Type()):
		return equalAs(va, vb)
	case va.Type().AssignableTo(vb.Type()):
		return equalAs(vb, va)
	}
	return false
}

// equalAs compares other against v with v's notion of equality. other must
// be assignable to v's type.
func equalAs(v, other reflect.Value) bool {
	if m := v.MethodByName("Equal"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool &&
			other.Type().AssignableTo(mt.In(0)) {
			return m.Call([]reflect.Value{other})[0].Bool()
		}
	}

	other = other.Convert(v.Type())
	if v.Comparable() && other.Comparable() {
		return v.Equal(other)
	}
	return reflect.DeepEqual(v.Interface(), other.Interface())
}
