package types

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Request is the bind file schema: one statement and its named parameters.
type Request struct {
	SQLText  string   `yaml:"sql" json:"sql" toml:"sql"`
	Bindings []*Param `yaml:"bindings" json:"bindings" toml:"bindings" validate:"dive"`
}

// Param is a single named parameter as written in a bind file.
// Value is kept loosely typed and coerced to Type when the binding is assembled.
type Param struct {
	Name  string      `yaml:"name" json:"name" toml:"name" validate:"required"`
	Type  Type        `yaml:"type" json:"type" toml:"type" validate:"type"`
	Value interface{} `yaml:"value" json:"value" toml:"value"`
	Null  bool        `yaml:"is_null" json:"is_null" toml:"is_null"`
}

// Type is the wire type tag of a bound parameter.
// The set is closed: new Go kinds map onto an existing tag instead of adding one.
type Type string

const (
	Text         Type = "TEXT"
	Fixed        Type = "FIXED"
	Real         Type = "REAL"
	Variant      Type = "VARIANT"
	Object       Type = "OBJECT"
	UnknownNull  Type = "ANY"
	TimestampNtz Type = "TIMESTAMP_NTZ"
	TimestampLtz Type = "TIMESTAMP_LTZ"
	TimestampTz  Type = "TIMESTAMP_TZ"
)

var allTypes = []Type{
	Text,
	Fixed,
	Real,
	Variant,
	Object,
	UnknownNull,
	TimestampNtz,
	TimestampLtz,
	TimestampTz,
}

// All returns every known type tag in declaration order.
func All() []Type {
	ret := make([]Type, len(allTypes))
	copy(ret, allTypes)
	return ret
}

func (t Type) Valid() bool {
	switch t {
	case Text, Fixed, Real, Variant, Object, UnknownNull, TimestampNtz, TimestampLtz, TimestampTz:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// IsTimestamp reports whether t is one of the TIMESTAMP_* tags.
func (t Type) IsTimestamp() bool {
	switch t {
	case TimestampNtz, TimestampLtz, TimestampTz:
		return true
	}
	return false
}

// Parse returns the type tag named by s.
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown snowflake type %q", s)
	}
	return t, nil
}

func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown snowflake type %q", string(t))
	}
	return json.Marshal(string(t))
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	typ, err := Parse(s)
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

func NewRequest(sql string, params ...*Param) *Request {
	return &Request{
		SQLText:  sql,
		Bindings: params,
	}
}

func NewParam(name string, typ Type, value interface{}) *Param {
	return &Param{
		Name:  name,
		Type:  typ,
		Value: value,
	}
}

func NewNullParam(name string, typ Type) *Param {
	return &Param{
		Name: name,
		Type: typ,
		Null: true,
	}
}
