package domain

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"net/url"
	"testing"
	"time"
)

func TestSerializeValue(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 10, 30, 0, 500, time.UTC)
	hello := "Hello"
	helloPtr := &hello
	answer := 42
	link, _ := url.Parse("https://example.com/a?b=1")
	var nilStringer fmt.Stringer = (*url.URL)(nil)

	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{name: "nil", in: nil, want: "", wantOK: false},
		{name: "nil bytes", in: []byte(nil), want: "", wantOK: false},
		{name: "string", in: "Hello", want: "Hello", wantOK: true},
		{name: "string keeps case", in: "RED", want: "RED", wantOK: true},
		{name: "empty string", in: "", want: "", wantOK: true},
		{name: "string keeps whitespace", in: " a  b ", want: " a  b ", wantOK: true},
		{name: "bytes", in: []byte("raw"), want: "raw", wantOK: true},
		{name: "json number", in: json.Number("12.50"), want: "12.50", wantOK: true},
		{name: "bool", in: true, want: "true", wantOK: true},
		{name: "int", in: 42, want: "42", wantOK: true},
		{name: "negative int64", in: int64(-7), want: "-7", wantOK: true},
		{name: "uint8", in: uint8(255), want: "255", wantOK: true},
		{name: "float64 integral", in: float64(3), want: "3", wantOK: true},
		{name: "float64 fraction", in: 0.25, want: "0.25", wantOK: true},
		{name: "float32", in: float32(1.5), want: "1.5", wantOK: true},
		{name: "time", in: ts, want: "2024-03-05T10:30:00.0000005Z", wantOK: true},
		{name: "stringer", in: netip.MustParseAddr("10.0.0.1"), want: "10.0.0.1", wantOK: true},
		{name: "slice", in: []any{"a", float64(1)}, want: `["a",1]`, wantOK: true},
		{name: "map", in: map[string]any{"b": 2, "a": "x"}, want: `{"a":"x","b":2}`, wantOK: true},
		{name: "nil string pointer", in: (*string)(nil), want: "", wantOK: false},
		{name: "nil url pointer", in: (*url.URL)(nil), want: "", wantOK: false},
		{name: "nil stringer interface value", in: nilStringer, want: "", wantOK: false},
		{name: "nil map", in: map[string]any(nil), want: "", wantOK: false},
		{name: "nil slice", in: []any(nil), want: "", wantOK: false},
		{name: "string pointer", in: &hello, want: "Hello", wantOK: true},
		{name: "pointer to pointer", in: &helloPtr, want: "Hello", wantOK: true},
		{name: "int pointer", in: &answer, want: "42", wantOK: true},
		{name: "time pointer", in: &ts, want: "2024-03-05T10:30:00.0000005Z", wantOK: true},
		{name: "pointer stringer", in: link, want: "https://example.com/a?b=1", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := SerializeValue(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("SerializeValue(%#v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SerializeValue(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSerializeValue_UnencodableFallsBackToSprint(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	got, ok := SerializeValue(ch)
	if !ok {
		t.Fatal("non-nil value should serialize")
	}
	if got == "" {
		t.Error("fallback rendering should not be empty")
	}
}
