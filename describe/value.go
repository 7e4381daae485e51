package describe

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ValueType identifies which of the recognized categories a value falls in.
type ValueType byte

const (
	TypeText ValueType = iota
	TypeNumber
	TypeBool
	TypeOther
)

func (t ValueType) String() string {
	switch t {
	case TypeText:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "boolean"
	default:
		return "other"
	}
}

// Value is one of Text, Number, Boolean or Other.
// The set is closed: no type outside this package implements it.
type Value interface {
	Type() ValueType
	String() string
	value()
}

// Text is a sequence of characters.
type Text string

func (Text) Type() ValueType  { return TypeText }
func (t Text) String() string { return string(t) }
func (Text) value()           {}

// Number holds either an integer or a floating-point value, fixed at
// construction.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

func (Number) Type() ValueType { return TypeNumber }
func (Number) value()          {}

// String renders the number in its default decimal form.
func (n Number) String() string {
	if n.isFloat {
		return formatFloat(n.f)
	}
	return strconv.FormatInt(n.i, 10)
}

// IsFloat reports whether the number was built from a floating-point value.
func (n Number) IsFloat() bool { return n.isFloat }

// Float64 returns the number as a float64.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Boolean is a two-valued logical flag.
type Boolean bool

func (Boolean) Type() ValueType  { return TypeBool }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Boolean) value()           {}

// Other wraps anything that is not text, numeric or boolean.
type Other struct {
	V interface{}
}

func (Other) Type() ValueType  { return TypeOther }
func (o Other) String() string { return fmt.Sprintf("%v", o.V) }
func (Other) value()           {}

// GoType names the Go type of the wrapped value, "nil" for nil.
func (o Other) GoType() string {
	if o.V == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", o.V)
}

// Helper functions for creating typed values
func String(s string) Value       { return Text(s) }
func Int(i int64) Value           { return Number{i: i} }
func Float(f float64) Value       { return Number{f: f, isFloat: true} }
func Bool(b bool) Value           { return Boolean(b) }
func OtherOf(v interface{}) Value { return Other{V: v} }

// Of classifies a dynamic Go value. Checks run in order text, numeric,
// boolean; anything left over becomes Other. Named types are classified by
// their underlying kind. Pointers are never dereferenced.
func Of(x interface{}) Value {
	switch v := x.(type) {
	case nil:
		return Other{}
	case Text, Number, Boolean, Other:
		return v.(Value)
	case string:
		return Text(v)
	case int:
		return Int(int64(v))
	case int64:
		return Int(v)
	case int32:
		return Int(int64(v))
	case float64:
		return Float(v)
	case bool:
		return Boolean(v)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32:
		// Go through the shortest float32 text so 0.1 stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return Float(f)
	case reflect.Float64:
		return Float(rv.Float())
	case reflect.Bool:
		return Boolean(rv.Bool())
	}
	return Other{V: x}
}

// Classify returns the category of x.
func Classify(x interface{}) ValueType {
	return Of(x).Type()
}
