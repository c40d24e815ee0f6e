package bind

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goccy/snowflake-bindings/types"
)

// Decimal binds an exact decimal number as FIXED without going through float64.
type Decimal decimal.Decimal

// UUID binds a UUID in its canonical hyphenated form as TEXT.
type UUID uuid.UUID

var (
	_ Value = Decimal{}
	_ Value = UUID{}
)

func (d Decimal) SQLType() types.Type { return types.Fixed }
func (d Decimal) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	buf.WriteString(decimal.Decimal(d).String())
	return false, nil
}
func (d Decimal) EncodeFormat() string { return "" }

func (u UUID) SQLType() types.Type { return types.Text }
func (u UUID) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	buf.WriteString(uuid.UUID(u).String())
	return false, nil
}
func (u UUID) EncodeFormat() string { return "" }
