package codec

import (
	"bytes"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type entry struct {
	Name string `json:"name" msgpack:"name" cbor:"name"`
	Port int    `json:"port" msgpack:"port" cbor:"port"`
}

func TestJSONRoundTrip(t *testing.T) {
	c := JSON[entry]{}
	in := entry{Name: "a", Port: 6060}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	c := Msgpack[entry]{}
	in := entry{Name: "b", Port: 6061}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestCBORRoundTripAndDeterminism(t *testing.T) {
	c := MustCBOR[entry](true)
	in := entry{Name: "c", Port: 6062}
	b1, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b2, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("deterministic mode produced differing bytes")
	}
	out, err := c.Decode(b1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestProtobufRoundTrip(t *testing.T) {
	in, err := structpb.NewStruct(map[string]any{"name": "d", "port": 6063.0})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	c := NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch: got %v want %v", out, in)
	}
}

func TestBytesAndStringIdentity(t *testing.T) {
	raw := []byte{0, 1, 2}
	if b, _ := (Bytes{}).Encode(raw); !bytes.Equal(b, raw) {
		t.Fatalf("Bytes.Encode mutated input")
	}
	if s, _ := (String{}).Decode([]byte("hi")); s != "hi" {
		t.Fatalf("String.Decode: got %q", s)
	}
}

func TestLimitRejectsOversized(t *testing.T) {
	c := Limit[entry]{Inner: JSON[entry]{}, MaxDecode: 4}
	b, err := c.Encode(entry{Name: "too long", Port: 1})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := c.Decode(b); err == nil || !strings.Contains(err.Error(), "payload too large") {
		t.Fatalf("expected payload-too-large error, got %v", err)
	}

	// Disabled limit passes through.
	c.MaxDecode = 0
	if _, err := c.Decode(b); err != nil {
		t.Fatalf("Decode with disabled limit: %v", err)
	}
}
