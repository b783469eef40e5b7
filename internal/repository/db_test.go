package repository

import (
	"reflect"
	"testing"
)

func TestMarshalListNil(t *testing.T) {
	raw, err := marshalList(nil)
	if err != nil {
		t.Fatalf("marshalList(nil) unexpected error: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("marshalList(nil) = %s, want []", raw)
	}
}

func TestListRoundTrip(t *testing.T) {
	want := []string{"Go", "SQL", "communication"}

	raw, err := marshalList(want)
	if err != nil {
		t.Fatalf("marshalList() unexpected error: %v", err)
	}

	var got []string
	if err := unmarshalList(raw, &got); err != nil {
		t.Fatalf("unmarshalList() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestUnmarshalListEmptyColumn(t *testing.T) {
	var got []string
	if err := unmarshalList(nil, &got); err != nil {
		t.Fatalf("unmarshalList(nil) unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("unmarshalList(nil) = %v, want empty non-nil slice", got)
	}
}
