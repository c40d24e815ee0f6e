package bind

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/goccy/snowflake-bindings/types"
)

// BindingValue is the payload of a parameter binding: a single text, a list of
// texts for batch parameter sets, or null.
type BindingValue struct {
	single *string
	multi  []string
}

func SingleBind(s string) BindingValue {
	return BindingValue{single: &s}
}

// MultiBind builds a batch payload. Encoders never produce it.
func MultiBind(values ...string) BindingValue {
	if values == nil {
		values = []string{}
	}
	return BindingValue{multi: values}
}

func NullBind() BindingValue {
	return BindingValue{}
}

func (v BindingValue) IsNull() bool {
	return v.single == nil && v.multi == nil
}

func (v BindingValue) IsMulti() bool {
	return v.multi != nil
}

// Single returns the single text payload.
func (v BindingValue) Single() (string, bool) {
	if v.single == nil {
		return "", false
	}
	return *v.single, true
}

func (v BindingValue) Multi() []string {
	return v.multi
}

func (v BindingValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.single != nil:
		return json.Marshal(*v.single)
	case v.multi != nil:
		return json.Marshal(v.multi)
	}
	return []byte("null"), nil
}

func (v *BindingValue) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = NullBind()
	case string:
		*v = SingleBind(x)
	case []interface{}:
		values := make([]string, 0, len(x))
		for _, elem := range x {
			s, ok := elem.(string)
			if !ok {
				return fmt.Errorf("unexpected binding list element %v", elem)
			}
			values = append(values, s)
		}
		*v = MultiBind(values...)
	default:
		return fmt.Errorf("unexpected binding value %s", string(b))
	}
	return nil
}

func (v BindingValue) String() string {
	switch {
	case v.single != nil:
		return *v.single
	case v.multi != nil:
		return fmt.Sprint(v.multi)
	}
	return "NULL"
}

// ParameterBinding is the wire record of one bound parameter.
type ParameterBinding struct {
	Type  *types.Type  `json:"type,omitempty"`
	Fmt   *string      `json:"fmt,omitempty"`
	Value BindingValue `json:"value"`
}

// NewParameterBinding encodes v into a fresh buffer and builds its wire record.
// A null encoding yields a null payload. The tag and format are always taken from v.
func NewParameterBinding(v Value) (*ParameterBinding, error) {
	if v == nil {
		v = Null
	}
	var buf bytes.Buffer
	null, err := v.EncodeSQL(&buf)
	if err != nil {
		return nil, err
	}
	typ := v.SQLType()
	binding := &ParameterBinding{
		Type:  &typ,
		Value: NullBind(),
	}
	if format := v.EncodeFormat(); format != "" {
		binding.Fmt = &format
	}
	if null {
		return binding, nil
	}
	b := buf.Bytes()
	if !utf8.Valid(b) {
		return nil, &EncodingError{Offset: invalidUTF8Offset(b)}
	}
	binding.Value = SingleBind(string(b))
	return binding, nil
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

func (b *ParameterBinding) SQLType() types.Type {
	if b.Type == nil {
		return ""
	}
	return *b.Type
}

func (b *ParameterBinding) Format() string {
	if b.Fmt == nil {
		return ""
	}
	return *b.Fmt
}
