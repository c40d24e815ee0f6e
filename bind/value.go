// Package bind converts Go values into snowflake parameter bindings.
//
// Every bindable value implements Value: it reports a wire type tag, writes its
// text form into a buffer, and optionally names a format hint. Wrappers such as
// Nullable, Variant and Object compose over any Value.
package bind

import (
	"bytes"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/goccy/snowflake-bindings/types"
)

// Value is implemented by everything that can be bound to a statement parameter.
type Value interface {
	// SQLType reports the wire type tag.
	SQLType() types.Type

	// EncodeSQL appends the text form of the value to buf. If the value is
	// SQL NULL it writes nothing and returns (true, nil).
	EncodeSQL(buf *bytes.Buffer) (null bool, err error)

	// EncodeFormat returns the format hint, or "" for the tag's default encoding.
	EncodeFormat() string
}

type (
	Int    int
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Uint   uint
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64

	Float32 float32
	Float64 float64

	// Char is a single code point bound as TEXT.
	Char   rune
	String string
)

var (
	_ Value = Int(0)
	_ Value = Int8(0)
	_ Value = Int16(0)
	_ Value = Int32(0)
	_ Value = Int64(0)
	_ Value = Uint(0)
	_ Value = Uint8(0)
	_ Value = Uint16(0)
	_ Value = Uint32(0)
	_ Value = Uint64(0)
	_ Value = Float32(0)
	_ Value = Float64(0)
	_ Value = Char(0)
	_ Value = String("")
)

func encodeInt(buf *bytes.Buffer, v int64) (bool, error) {
	var scratch [20]byte
	buf.Write(strconv.AppendInt(scratch[:0], v, 10))
	return false, nil
}

func encodeUint(buf *bytes.Buffer, v uint64) (bool, error) {
	var scratch [20]byte
	buf.Write(strconv.AppendUint(scratch[:0], v, 10))
	return false, nil
}

// encodeFloat renders non-finite values with snowflake's special float literals.
func encodeFloat(buf *bytes.Buffer, v float64, bitSize int) (bool, error) {
	switch {
	case math.IsNaN(v):
		buf.WriteString("NaN")
	case math.IsInf(v, 1):
		buf.WriteString("inf")
	case math.IsInf(v, -1):
		buf.WriteString("-inf")
	default:
		var scratch [32]byte
		buf.Write(strconv.AppendFloat(scratch[:0], v, 'f', -1, bitSize))
	}
	return false, nil
}

func (v Int) SQLType() types.Type { return types.Fixed }
func (v Int) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeInt(buf, int64(v)) }
func (v Int) EncodeFormat() string { return "" }
func (v Int8) SQLType() types.Type { return types.Fixed }
func (v Int8) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeInt(buf, int64(v)) }
func (v Int8) EncodeFormat() string { return "" }
func (v Int16) SQLType() types.Type { return types.Fixed }
func (v Int16) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeInt(buf, int64(v)) }
func (v Int16) EncodeFormat() string { return "" }
func (v Int32) SQLType() types.Type { return types.Fixed }
func (v Int32) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeInt(buf, int64(v)) }
func (v Int32) EncodeFormat() string { return "" }
func (v Int64) SQLType() types.Type { return types.Fixed }
func (v Int64) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeInt(buf, int64(v)) }
func (v Int64) EncodeFormat() string { return "" }
func (v Uint) SQLType() types.Type { return types.Fixed }
func (v Uint) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeUint(buf, uint64(v)) }
func (v Uint) EncodeFormat() string { return "" }
func (v Uint8) SQLType() types.Type { return types.Fixed }
func (v Uint8) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeUint(buf, uint64(v)) }
func (v Uint8) EncodeFormat() string { return "" }
func (v Uint16) SQLType() types.Type { return types.Fixed }
func (v Uint16) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeUint(buf, uint64(v)) }
func (v Uint16) EncodeFormat() string { return "" }
func (v Uint32) SQLType() types.Type { return types.Fixed }
func (v Uint32) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeUint(buf, uint64(v)) }
func (v Uint32) EncodeFormat() string { return "" }
func (v Uint64) SQLType() types.Type { return types.Fixed }
func (v Uint64) EncodeSQL(buf *bytes.Buffer) (bool, error) { return encodeUint(buf, uint64(v)) }
func (v Uint64) EncodeFormat() string { return "" }

func (v Float32) SQLType() types.Type { return types.Real }
func (v Float32) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeFloat(buf, float64(v), 32)
}
func (v Float32) EncodeFormat() string { return "" }

func (v Float64) SQLType() types.Type { return types.Real }
func (v Float64) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeFloat(buf, float64(v), 64)
}
func (v Float64) EncodeFormat() string { return "" }

func (v Char) SQLType() types.Type { return types.Text }
func (v Char) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	// WriteRune would substitute U+FFFD for surrogates and out of range values.
	if !utf8.ValidRune(rune(v)) {
		return false, &EncodingError{Offset: buf.Len()}
	}
	buf.WriteRune(rune(v))
	return false, nil
}
func (v Char) EncodeFormat() string { return "" }

func (v String) SQLType() types.Type { return types.Text }
func (v String) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	buf.WriteString(string(v))
	return false, nil
}
func (v String) EncodeFormat() string { return "" }
