package ecbor

import "testing"

func TestUintBuilderRoundTrip(t *testing.T) {
	it := Uint(42)
	if it.Type != TypeUint {
		t.Fatalf("Type = %v, want TypeUint", it.Type)
	}
	if it.Uint() != 42 {
		t.Fatalf("Uint() = %d, want 42", it.Uint())
	}
}

func TestIntBuilderDispatchesBySign(t *testing.T) {
	pos := Int(5)
	if pos.Type != TypeUint || pos.Uint() != 5 {
		t.Fatalf("Int(5) = %+v, want TypeUint/5", pos)
	}

	neg := Int(-5)
	if neg.Type != TypeNint {
		t.Fatalf("Int(-5).Type = %v, want TypeNint", neg.Type)
	}
	if neg.Int() != -5 {
		t.Fatalf("Int(-5).Int() = %d, want -5", neg.Int())
	}
}

func TestLenByType(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want int
	}{
		{"str", Str("hello"), 5},
		{"bstr", Bstr([]byte{1, 2, 3}), 3},
		{"array", mustArray(t, []Item{Uint(1), Uint(2)}), 2},
		{"map", mustMap(t, []Item{Str("a")}, []Item{Uint(1)}), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.item.Len()
			if err != nil {
				t.Fatalf("Len() error = %v", err)
			}
			if got != c.want {
				t.Fatalf("Len() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestLenRejectsNonContainerTypes(t *testing.T) {
	u := Uint(1)
	if _, err := u.Len(); err != ErrInvalidType {
		t.Fatalf("Len() error = %v, want ErrInvalidType", err)
	}
}

func mustArray(t *testing.T, items []Item) Item {
	t.Helper()
	var arr Item
	if err := Array(&arr, items); err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	return arr
}

func mustMap(t *testing.T, keys, values []Item) Item {
	t.Helper()
	var m Item
	if err := Map(&m, keys, values); err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	return m
}

func TestArrayEmptyHasNoChild(t *testing.T) {
	arr := mustArray(t, nil)
	if arr.Length != 0 || arr.Child != nil {
		t.Fatalf("empty Array() = %+v, want Length 0 and nil Child", arr)
	}
}

func TestArraySetsFirstChildParent(t *testing.T) {
	items := []Item{Uint(1), Uint(2)}
	var arr Item
	if err := Array(&arr, items); err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if arr.Child.Parent != &arr {
		t.Fatalf("Child.Parent = %p, want %p", arr.Child.Parent, &arr)
	}
}

func TestMapRejectsMismatchedLengths(t *testing.T) {
	var m Item
	err := Map(&m, []Item{Str("a")}, nil)
	if err != ErrInvalidKeyValuePair {
		t.Fatalf("Map() error = %v, want ErrInvalidKeyValuePair", err)
	}
}

func TestMapRejectsNilOut(t *testing.T) {
	if err := Map(nil, nil, nil); err != ErrNilMap {
		t.Fatalf("Map() error = %v, want ErrNilMap", err)
	}
}

func TestArrayRejectsNilOut(t *testing.T) {
	if err := Array(nil, nil); err != ErrNilArray {
		t.Fatalf("Array() error = %v, want ErrNilArray", err)
	}
}
