package bind

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goccy/snowflake-bindings/types"
)

func TestNullableAbsent(t *testing.T) {
	for _, n := range []Nullable{Null, {}, NullableOf(nil)} {
		var buf bytes.Buffer
		null, err := n.EncodeSQL(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !null {
			t.Fatalf("absent nullable reported a value")
		}
		if buf.Len() != 0 {
			t.Fatalf("absent nullable wrote %q", buf.String())
		}
		if n.SQLType() != types.UnknownNull {
			t.Fatalf("SQLType() = %s; want %s", n.SQLType(), types.UnknownNull)
		}
		if n.EncodeFormat() != "" {
			t.Fatalf("EncodeFormat() = %q; want empty", n.EncodeFormat())
		}
		if n.Valid() {
			t.Fatalf("absent nullable is valid")
		}
	}
}

func TestNullablePresentMatchesInner(t *testing.T) {
	inners := []Value{
		Int(-3),
		Uint64(9),
		Float64(2.5),
		String("text"),
		Char('c'),
		NewObject(map[string]int{"a": 1}),
		NewVariant(Int(1)),
	}
	for _, inner := range inners {
		n := NullableOf(inner)
		want, wantNull := encode(t, inner)
		got, gotNull := encode(t, n)
		if got != want || gotNull != wantNull {
			t.Errorf("Nullable(%#v) encoded %q (null=%v); want %q (null=%v)", inner, got, gotNull, want, wantNull)
		}
		if n.SQLType() != inner.SQLType() {
			t.Errorf("Nullable(%#v).SQLType() = %s; want %s", inner, n.SQLType(), inner.SQLType())
		}
		if n.EncodeFormat() != inner.EncodeFormat() {
			t.Errorf("Nullable(%#v).EncodeFormat() = %q; want %q", inner, n.EncodeFormat(), inner.EncodeFormat())
		}
	}
}

func TestVariantReportsVariant(t *testing.T) {
	inners := []Value{
		Int(42),
		Float32(1.25),
		String("v"),
		NewObject([]string{"a", "b"}),
		NullableOf(Int(5)),
		NewVariant(String("nested")),
	}
	for _, inner := range inners {
		v := NewVariant(inner)
		if v.SQLType() != types.Variant {
			t.Errorf("Variant(%#v).SQLType() = %s; want %s", inner, v.SQLType(), types.Variant)
		}
		want, _ := encode(t, inner)
		got, _ := encode(t, v)
		if got != want {
			t.Errorf("Variant(%#v) encoded %q; want %q", inner, got, want)
		}
		if v.EncodeFormat() != inner.EncodeFormat() {
			t.Errorf("Variant(%#v).EncodeFormat() = %q; want %q", inner, v.EncodeFormat(), inner.EncodeFormat())
		}
	}
}

func TestVariantOfNull(t *testing.T) {
	v := NewVariant(Null)
	_, null := encode(t, v)
	if !null {
		t.Fatalf("variant of null reported a value")
	}
	if v.SQLType() != types.Variant {
		t.Fatalf("SQLType() = %s; want %s", v.SQLType(), types.Variant)
	}
}

func TestNullableOfNullWritesValue(t *testing.T) {
	n := NullableOf(Null)
	got, null := encode(t, n)
	if null {
		t.Fatalf("present nullable reported null")
	}
	if got != "" {
		t.Fatalf("encode = %q; want empty", got)
	}
	if n.SQLType() != types.UnknownNull {
		t.Fatalf("SQLType() = %s; want %s", n.SQLType(), types.UnknownNull)
	}
	if !n.Valid() {
		t.Fatalf("present nullable is not valid")
	}
}

type person struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Tags    []string `json:"tags"`
	Comment string   `json:"comment,omitempty"`
}

func TestObject(t *testing.T) {
	p := &person{Name: "<Alice & Bob>", Age: 30, Tags: []string{"x", "y"}}
	o := NewObject(p)
	if o.SQLType() != types.Object {
		t.Fatalf("SQLType() = %s; want %s", o.SQLType(), types.Object)
	}
	if o.EncodeFormat() != "json" {
		t.Fatalf("EncodeFormat() = %q; want json", o.EncodeFormat())
	}
	got, null := encode(t, o)
	if null {
		t.Fatalf("object encoded as null")
	}
	if expected := `{"name":"<Alice & Bob>","age":30,"tags":["x","y"]}`; got != expected {
		t.Fatalf("encode = %s; want %s", got, expected)
	}
	var decoded person
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*p, decoded); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestObjectMapRoundTrip(t *testing.T) {
	v := map[string]interface{}{
		"a": 1.5,
		"b": []interface{}{"x", true, nil},
		"c": map[string]interface{}{"d": "e"},
	}
	got, _ := encode(t, NewObject(v))
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, decoded); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestObjectSerializationError(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("keep")
	_, err := NewObject(make(chan int)).EncodeSQL(&buf)
	if err == nil {
		t.Fatal("expected error")
	}
	var serErr *SerializationError
	if !errors.As(err, &serErr) {
		t.Fatalf("expected *SerializationError but got %T", err)
	}
	if serErr.GoType != "chan int" {
		t.Fatalf("GoType = %q; want chan int", serErr.GoType)
	}
	if buf.String() != "keep" {
		t.Fatalf("buffer = %q; want keep", buf.String())
	}
}
