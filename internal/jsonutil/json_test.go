package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodePretty_KeepsHeaderCharacters(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, map[string]string{"h": "sp|P1|<a&b>"}); err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"h\": \"sp|P1|<a&b>\"\n}\n"; buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestNewLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf)
	_ = enc.Encode([]int{1})
	_ = enc.Encode("<x>")
	if buf.String() != "[1]\n\"<x>\"\n" {
		t.Fatalf("got %q", buf.String())
	}
}
