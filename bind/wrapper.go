package bind

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/goccy/snowflake-bindings/types"
)

// Nullable binds either its inner Value or SQL NULL when Value is nil.
type Nullable struct {
	Value Value
}

// Null is an absent Nullable. It reports the ANY type tag.
var Null = Nullable{}

func NullableOf(v Value) Nullable {
	return Nullable{Value: v}
}

func (n Nullable) Valid() bool {
	return n.Value != nil
}

func (n Nullable) SQLType() types.Type {
	if n.Value == nil {
		return types.UnknownNull
	}
	return n.Value.SQLType()
}

func (n Nullable) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	if n.Value == nil {
		return true, nil
	}
	if _, err := n.Value.EncodeSQL(buf); err != nil {
		return false, err
	}
	return false, nil
}

func (n Nullable) EncodeFormat() string {
	if n.Value == nil {
		return ""
	}
	return n.Value.EncodeFormat()
}

// Variant binds any Value as semi-structured data.
// It always reports VARIANT while keeping the inner value's text and format.
type Variant struct {
	value Value
}

func NewVariant(v Value) *Variant {
	return &Variant{value: v}
}

func (v *Variant) SQLType() types.Type {
	return types.Variant
}

func (v *Variant) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	if v.value == nil {
		return true, nil
	}
	return v.value.EncodeSQL(buf)
}

func (v *Variant) EncodeFormat() string {
	if v.value == nil {
		return ""
	}
	return v.value.EncodeFormat()
}

// Object binds a structured Go value serialized as a single JSON document.
type Object struct {
	value interface{}
}

func NewObject(v interface{}) *Object {
	return &Object{value: v}
}

func (o *Object) SQLType() types.Type {
	return types.Object
}

func (o *Object) EncodeFormat() string {
	return "json"
}

func (o *Object) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	start := buf.Len()
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o.value); err != nil {
		buf.Truncate(start)
		return false, &SerializationError{GoType: fmt.Sprintf("%T", o.value), Cause: err}
	}
	if n := buf.Len(); n > start && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
	return false, nil
}
