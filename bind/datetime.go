package bind

import (
	"bytes"
	"time"

	"github.com/goccy/snowflake-bindings/types"
)

const (
	dateLayout        = "2006-01-02"
	timestampLayout   = "2006-01-02 15:04:05.000"
	timestampTZLayout = "2006-01-02 15:04:05.000 -0700"
)

type (
	// Date binds the calendar date part of a time as TEXT.
	Date time.Time

	// TimestampNTZ binds the wall clock of a time without zone information.
	TimestampNTZ time.Time

	// TimestampLTZ binds an instant rendered in the local time zone.
	TimestampLTZ time.Time

	// TimestampTZ binds an instant together with its own UTC offset.
	TimestampTZ time.Time
)

var (
	_ Value = Date{}
	_ Value = TimestampNTZ{}
	_ Value = TimestampLTZ{}
	_ Value = TimestampTZ{}
)

// localZone is the zone TimestampLTZ renders in.
var localZone = func() *time.Location { return time.Local }

func encodeTime(buf *bytes.Buffer, t time.Time, layout string) (bool, error) {
	var scratch [64]byte
	buf.Write(t.AppendFormat(scratch[:0], layout))
	return false, nil
}

func (d Date) SQLType() types.Type { return types.Text }
func (d Date) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeTime(buf, time.Time(d), dateLayout)
}
func (d Date) EncodeFormat() string { return "" }

func (t TimestampNTZ) SQLType() types.Type { return types.TimestampNtz }
func (t TimestampNTZ) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeTime(buf, time.Time(t), timestampLayout)
}
func (t TimestampNTZ) EncodeFormat() string { return "" }

func (t TimestampLTZ) SQLType() types.Type { return types.TimestampLtz }
func (t TimestampLTZ) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeTime(buf, time.Time(t).In(localZone()), timestampLayout)
}
func (t TimestampLTZ) EncodeFormat() string { return "" }

func (t TimestampTZ) SQLType() types.Type { return types.TimestampTz }
func (t TimestampTZ) EncodeSQL(buf *bytes.Buffer) (bool, error) {
	return encodeTime(buf, time.Time(t), timestampTZLayout)
}
func (t TimestampTZ) EncodeFormat() string { return "" }
