package bind

import (
	"bytes"
	"math"
	"testing"

	"github.com/goccy/snowflake-bindings/types"
)

func encode(t *testing.T, v Value) (string, bool) {
	t.Helper()
	var buf bytes.Buffer
	null, err := v.EncodeSQL(&buf)
	if err != nil {
		t.Fatalf("EncodeSQL(%#v) returned error: %v", v, err)
	}
	return buf.String(), null
}

func TestIntegerValues(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Int8(math.MinInt8), "-128"},
		{Int8(math.MaxInt8), "127"},
		{Int16(math.MinInt16), "-32768"},
		{Int32(math.MaxInt32), "2147483647"},
		{Int64(math.MinInt64), "-9223372036854775808"},
		{Int64(math.MaxInt64), "9223372036854775807"},
		{Uint(7), "7"},
		{Uint8(math.MaxUint8), "255"},
		{Uint16(math.MaxUint16), "65535"},
		{Uint32(math.MaxUint32), "4294967295"},
		{Uint64(math.MaxUint64), "18446744073709551615"},
		{Int64(1000000), "1000000"},
	}
	for _, test := range tests {
		got, null := encode(t, test.value)
		if null {
			t.Errorf("%#v encoded as null", test.value)
		}
		if got != test.expected {
			t.Errorf("encode(%#v) = %q; want %q", test.value, got, test.expected)
		}
		if typ := test.value.SQLType(); typ != types.Fixed {
			t.Errorf("%#v.SQLType() = %s; want %s", test.value, typ, types.Fixed)
		}
		if format := test.value.EncodeFormat(); format != "" {
			t.Errorf("%#v.EncodeFormat() = %q; want empty", test.value, format)
		}
	}
}

func TestFloatValues(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Float64(0), "0"},
		{Float64(0.1), "0.1"},
		{Float64(-2.5), "-2.5"},
		{Float64(100), "100"},
		{Float64(1e6), "1000000"},
		{Float64(123456789), "123456789"},
		{Float64(0.00001), "0.00001"},
		{Float64(1e21), "1000000000000000000000"},
		{Float64(1.5e-7), "0.00000015"},
		{Float32(16777216), "16777216"},
		{Float32(0.1), "0.1"},
		{Float32(-3.25), "-3.25"},
		{Float64(math.NaN()), "NaN"},
		{Float64(math.Inf(1)), "inf"},
		{Float64(math.Inf(-1)), "-inf"},
		{Float32(math.Inf(-1)), "-inf"},
	}
	for _, test := range tests {
		got, _ := encode(t, test.value)
		if got != test.expected {
			t.Errorf("encode(%#v) = %q; want %q", test.value, got, test.expected)
		}
		if typ := test.value.SQLType(); typ != types.Real {
			t.Errorf("%#v.SQLType() = %s; want %s", test.value, typ, types.Real)
		}
	}
}

func TestTextValues(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{String("hello"), "hello"},
		{String(""), ""},
		{String("日本語"), "日本語"},
		{String("emoji \U0001F600"), "emoji \U0001F600"},
		{Char('x'), "x"},
		{Char('語'), "語"},
		{Char('\U0001F600'), "\U0001F600"},
	}
	for _, test := range tests {
		got, null := encode(t, test.value)
		if null {
			t.Errorf("%#v encoded as null", test.value)
		}
		if got != test.expected {
			t.Errorf("encode(%#v) = %q; want %q", test.value, got, test.expected)
		}
		if typ := test.value.SQLType(); typ != types.Text {
			t.Errorf("%#v.SQLType() = %s; want %s", test.value, typ, types.Text)
		}
	}
}

func TestCharInvalidRune(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("ab")
	_, err := Char(0xD800).EncodeSQL(&buf)
	encErr, ok := err.(*EncodingError)
	if !ok {
		t.Fatalf("expected *EncodingError but got %T (%v)", err, err)
	}
	if encErr.Offset != 2 {
		t.Fatalf("Offset = %d; want 2", encErr.Offset)
	}
	if buf.String() != "ab" {
		t.Fatalf("buffer was modified: %q", buf.String())
	}
}

func TestEncodeAppends(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("prefix:")
	if _, err := Int(12).EncodeSQL(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "prefix:12" {
		t.Fatalf("got %q", buf.String())
	}
}
