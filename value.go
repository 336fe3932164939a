package strfmt

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"fortio.org/safecast"
)

// Kind names the capability of a [Value].
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindText
	KindSeq
	KindMap
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindSeq:
		return "sequence"
	case KindMap:
		return "map"
	case KindPair:
		return "pair"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the closed set of renderable values: [Int], [Float], [Bool],
// [Text], [Seq], [Map] and [Pair]. Arguments are converted with [ValueOf].
type Value interface {
	Kind() Kind
	value()
}

type (
	Int   int64
	Float float64
	Bool  bool
	Text  string
	Seq   []Value
	// Map holds entries in rendering order. Selectors look keys up by text.
	Map []Entry
)

// Entry is a single map entry.
type Entry struct {
	Key   Value
	Value Value
}

// Pair renders as its two values joined by the pair separator.
type Pair struct {
	First  Value
	Second Value
}

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Bool) Kind() Kind  { return KindBool }
func (Text) Kind() Kind  { return KindText }
func (Seq) Kind() Kind   { return KindSeq }
func (Map) Kind() Kind   { return KindMap }
func (Pair) Kind() Kind  { return KindPair }

func (Int) value()   {}
func (Float) value() {}
func (Bool) value()  {}
func (Text) value()  {}
func (Seq) value()   {}
func (Map) value()   {}
func (Pair) value()  {}

// Lookup returns the value stored under a textual key.
func (m Map) Lookup(key string) (Value, bool) {
	for _, e := range m {
		if k, ok := e.Key.(Text); ok && string(k) == key {
			return e.Value, true
		}
	}
	return nil, false
}

// textKeyed reports whether every key is textual.
func (m Map) textKeyed() bool {
	for _, e := range m {
		if _, ok := e.Key.(Text); !ok {
			return false
		}
	}
	return true
}

// Valuer is implemented by types that know their own [Value].
type Valuer interface {
	FormatValue() Value
}

// NewPair converts both halves with [ValueOf].
func NewPair(first, second any) (Pair, error) {
	a, err := ValueOf(first)
	if err != nil {
		return Pair{}, err
	}
	b, err := ValueOf(second)
	if err != nil {
		return Pair{}, err
	}
	return Pair{First: a, Second: b}, nil
}

// ValueOf converts a Go value into a [Value]. Integers of every width,
// floats, bools, strings, byte slices, errors, [fmt.Stringer], [Valuer],
// slices, arrays, maps and pointers to any of those are supported. Map
// entries are sorted by key.
func ValueOf(v any) (Value, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrUnsupportedValue, v)
	}
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedValue)
	case Value:
		return v, nil
	case Valuer:
		if out := v.FormatValue(); out != nil {
			return out, nil
		}
		return nil, fmt.Errorf("%w: %T returned a nil value", ErrUnsupportedValue, v)
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintValue(v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return Text(v), nil
	case []byte:
		return Text(v), nil
	case error:
		return Text(v.Error()), nil
	case fmt.Stringer:
		return Text(v.String()), nil
	}
	return reflectValue(reflect.ValueOf(v))
}

func uintValue(u uint64) (Value, error) {
	n, err := safecast.Conv[int64](u)
	if err != nil {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, u)
	}
	return Int(n), nil
}

func reflectValue(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text(rv.Bytes()), nil
		}
		return reflectSeq(rv)
	case reflect.Array:
		return reflectSeq(rv)
	case reflect.Map:
		return reflectMap(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrUnsupportedValue, rv.Type())
		}
		return ValueOf(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
	}
}

func reflectSeq(rv reflect.Value) (Value, error) {
	seq := make(Seq, rv.Len())
	for i := range seq {
		v, err := ValueOf(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		seq[i] = v
	}
	return seq, nil
}

func reflectMap(rv reflect.Value) (Value, error) {
	m := make(Map, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := ValueOf(iter.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		v, err := ValueOf(iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("map value %v: %w", iter.Key().Interface(), err)
		}
		m = append(m, Entry{Key: k, Value: v})
	}
	slices.SortFunc(m, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
	return m, nil
}

// compareKeys orders scalar keys by kind, then by value.
func compareKeys(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Int:
		return cmp.Compare(a, b.(Int))
	case Float:
		return cmp.Compare(a, b.(Float))
	case Text:
		return strings.Compare(string(a), string(b.(Text)))
	case Bool:
		switch {
		case a == b.(Bool):
			return 0
		case !bool(a):
			return -1
		default:
			return 1
		}
	}
	return 0
}
