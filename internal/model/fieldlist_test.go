package model

import (
	"reflect"
	"testing"
)

func TestFieldListAddRemoveUpdate(t *testing.T) {
	l := FieldList{}.Add("Go").Add("SQL").Add("Docker")

	l = l.Remove(1)
	if !reflect.DeepEqual(l, FieldList{"Go", "Docker"}) {
		t.Fatalf("after Remove: %v", l)
	}

	l = l.Update(1, "Kubernetes")
	if !reflect.DeepEqual(l, FieldList{"Go", "Kubernetes"}) {
		t.Fatalf("after Update: %v", l)
	}
}

func TestFieldListOutOfRangeNoop(t *testing.T) {
	l := FieldList{"a", "b"}

	if got := l.Remove(5); !reflect.DeepEqual(got, l) {
		t.Errorf("Remove(5) = %v, want unchanged", got)
	}
	if got := l.Update(-1, "x"); !reflect.DeepEqual(got, l) {
		t.Errorf("Update(-1) = %v, want unchanged", got)
	}
}

func TestFieldListNormalize(t *testing.T) {
	l := FieldList{" a ", "", "b", "  ", "\t"}

	got := l.Normalize()
	if !reflect.DeepEqual(got, FieldList{" a ", "b"}) {
		t.Errorf("Normalize() = %v", got)
	}
}

func TestFieldListNormalizeEmpty(t *testing.T) {
	got := FieldList(nil).Normalize()
	if got == nil || len(got) != 0 {
		t.Errorf("Normalize() of nil = %v, want empty non-nil", got)
	}
}
