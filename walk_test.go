package ecbor

import "testing"

type recordingVisitor struct {
	events []string
}

func (v *recordingVisitor) VisitValue(item *Item) error {
	v.events = append(v.events, "value")
	return nil
}
func (v *recordingVisitor) VisitArrayStart(item *Item) error {
	v.events = append(v.events, "array-start")
	return nil
}
func (v *recordingVisitor) VisitArrayEnd(item *Item) error {
	v.events = append(v.events, "array-end")
	return nil
}
func (v *recordingVisitor) VisitMapStart(item *Item) error {
	v.events = append(v.events, "map-start")
	return nil
}
func (v *recordingVisitor) VisitMapEnd(item *Item) error {
	v.events = append(v.events, "map-end")
	return nil
}
func (v *recordingVisitor) VisitTagStart(item *Item) error {
	v.events = append(v.events, "tag-start")
	return nil
}
func (v *recordingVisitor) VisitTagEnd(item *Item) error {
	v.events = append(v.events, "tag-end")
	return nil
}

func TestWalkNestedArray(t *testing.T) {
	// [1, [2, 3]]
	hex := []byte{0x82, 0x01, 0x82, 0x02, 0x03}
	pool := make([]Item, 8)
	td, _ := NewTreeDecoder(hex, pool)
	root, err := td.DecodeTree()
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	v := &recordingVisitor{}
	if err := Walk(root, v); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"array-start", "value", "array-start", "value", "value", "array-end", "array-end"}
	if len(v.events) != len(want) {
		t.Fatalf("events = %v, want %v", v.events, want)
	}
	for i := range want {
		if v.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", v.events, want)
		}
	}
}

func TestWalkRejectsNilRoot(t *testing.T) {
	if err := Walk(nil, &recordingVisitor{}); err != ErrNilItem {
		t.Fatalf("Walk() error = %v, want ErrNilItem", err)
	}
}

type skippingVisitor struct {
	recordingVisitor
}

func (v *skippingVisitor) VisitArrayStart(item *Item) error {
	v.events = append(v.events, "array-start")
	return ErrSkipVisit
}

func TestWalkSkipVisitStopsDescent(t *testing.T) {
	hex := []byte{0x82, 0x01, 0x02}
	pool := make([]Item, 4)
	td, _ := NewTreeDecoder(hex, pool)
	root, _ := td.DecodeTree()

	v := &skippingVisitor{}
	if err := Walk(root, v); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(v.events) != 1 || v.events[0] != "array-start" {
		t.Fatalf("events = %v, want [array-start]", v.events)
	}
}

func TestWalkMapAndTag(t *testing.T) {
	// tag 1 applied to {"a": 1}
	hex := []byte{0xc1, 0xa1, 0x61, 0x61, 0x01}
	pool := make([]Item, 8)
	td, _ := NewTreeDecoder(hex, pool)
	root, err := td.DecodeTree()
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	v := &recordingVisitor{}
	if err := Walk(root, v); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"tag-start", "map-start", "value", "value", "map-end", "tag-end"}
	if len(v.events) != len(want) {
		t.Fatalf("events = %v, want %v", v.events, want)
	}
	for i := range want {
		if v.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", v.events, want)
		}
	}
}
