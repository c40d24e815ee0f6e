package bind

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goccy/snowflake-bindings/types"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ValueOf returns the Value that binds v with the type tag implied by its Go type.
//
// Integers bind as FIXED, floats as REAL, strings as TEXT, time.Time as
// TIMESTAMP_TZ, and maps, slices and structs as a JSON OBJECT. nil and nil
// pointers bind as NULL.
func ValueOf(v interface{}) (Value, error) {
	if isNil(v) {
		return Null, nil
	}
	switch vv := v.(type) {
	case Value:
		return vv, nil
	case string:
		return String(vv), nil
	case []byte:
		return String(vv), nil
	case bool:
		return String(strconv.FormatBool(vv)), nil
	case time.Time:
		return TimestampTZ(vv), nil
	case decimal.Decimal:
		return Decimal(vv), nil
	case uuid.UUID:
		return UUID(vv), nil
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return Int64(i), nil
		}
		f, err := vv.Float64()
		if err != nil {
			return nil, newWrongTypeError(types.Real, v)
		}
		return Float64(f), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int:
		return Int(rv.Int()), nil
	case reflect.Int8:
		return Int8(rv.Int()), nil
	case reflect.Int16:
		return Int16(rv.Int()), nil
	case reflect.Int32:
		return Int32(rv.Int()), nil
	case reflect.Int64:
		return Int64(rv.Int()), nil
	case reflect.Uint:
		return Uint(rv.Uint()), nil
	case reflect.Uint8:
		return Uint8(rv.Uint()), nil
	case reflect.Uint16:
		return Uint16(rv.Uint()), nil
	case reflect.Uint32:
		return Uint32(rv.Uint()), nil
	case reflect.Uint64, reflect.Uintptr:
		return Uint64(rv.Uint()), nil
	case reflect.Float32:
		return Float32(rv.Float()), nil
	case reflect.Float64:
		return Float64(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return String(strconv.FormatBool(rv.Bool())), nil
	case reflect.Ptr:
		return ValueOf(rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return NewObject(v), nil
	}
	return nil, newWrongTypeError(types.Variant, v)
}

// Convert coerces a loosely typed value, such as one decoded from a bind file,
// into a Value of the requested type. An empty typ falls back to ValueOf.
func Convert(typ types.Type, v interface{}) (Value, error) {
	if isNil(v) {
		return Null, nil
	}
	if typ == "" {
		return ValueOf(v)
	}
	if value, ok := v.(Value); ok {
		switch {
		case value.SQLType() == typ:
			return value, nil
		case typ == types.Variant:
			return NewVariant(value), nil
		}
		return nil, newWrongTypeError(typ, v)
	}
	switch typ {
	case types.Fixed:
		return convertFixed(v)
	case types.Real:
		return convertReal(v)
	case types.Text:
		return convertText(v)
	case types.Variant:
		value, err := ValueOf(v)
		if err != nil {
			return nil, newWrongTypeError(typ, v)
		}
		return NewVariant(value), nil
	case types.Object:
		switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			return NewObject(v), nil
		}
		return nil, newWrongTypeError(typ, v)
	case types.TimestampNtz, types.TimestampLtz, types.TimestampTz:
		return convertTimestamp(typ, v)
	case types.UnknownNull:
		return nil, newWrongTypeError(typ, v)
	}
	return nil, fmt.Errorf("unknown snowflake type %q", string(typ))
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func convertFixed(v interface{}) (Value, error) {
	switch vv := v.(type) {
	case decimal.Decimal:
		return Decimal(vv), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(rv.String())
		if err != nil {
			return nil, newWrongTypeError(types.Fixed, v)
		}
		return Decimal(d), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newWrongTypeError(types.Fixed, v)
		}
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return Int64(f), nil
		}
		return Decimal(decimal.NewFromFloat(f)), nil
	}
	return nil, newWrongTypeError(types.Fixed, v)
}

func convertReal(v interface{}) (Value, error) {
	switch vv := v.(type) {
	case decimal.Decimal:
		return Float64(vv.InexactFloat64()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		f, err := strconv.ParseFloat(rv.String(), 64)
		if err != nil {
			return nil, newWrongTypeError(types.Real, v)
		}
		return Float64(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Float64(rv.Uint()), nil
	case reflect.Float32:
		return Float32(rv.Float()), nil
	case reflect.Float64:
		return Float64(rv.Float()), nil
	}
	return nil, newWrongTypeError(types.Real, v)
}

func convertText(v interface{}) (Value, error) {
	switch vv := v.(type) {
	case string:
		return String(vv), nil
	case []byte:
		return String(vv), nil
	case uuid.UUID:
		return UUID(vv), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return String(rv.String()), nil
	}
	return nil, newWrongTypeError(types.Text, v)
}

func convertTimestamp(typ types.Type, v interface{}) (Value, error) {
	var t time.Time
	switch vv := v.(type) {
	case time.Time:
		t = vv
	case string:
		loc := time.UTC
		if typ == types.TimestampLtz {
			loc = localZone()
		}
		parsed, err := parseTime(vv, loc)
		if err != nil {
			return nil, newWrongTypeError(typ, v)
		}
		t = parsed
	default:
		return nil, newWrongTypeError(typ, v)
	}
	switch typ {
	case types.TimestampNtz:
		return TimestampNTZ(t), nil
	case types.TimestampLtz:
		return TimestampLTZ(t), nil
	}
	return TimestampTZ(t), nil
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", s)
}
