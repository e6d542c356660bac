package ecbor

import "testing"

func TestGraphBuilderFlatArray(t *testing.T) {
	pool := make([]Item, 8)
	b, err := NewGraphBuilder(pool)
	if err != nil {
		t.Fatalf("NewGraphBuilder() error = %v", err)
	}
	if err := b.BeginArray(); err != nil {
		t.Fatalf("BeginArray() error = %v", err)
	}
	if err := b.AppendUint(1); err != nil {
		t.Fatalf("AppendUint(1) error = %v", err)
	}
	if err := b.AppendUint(2); err != nil {
		t.Fatalf("AppendUint(2) error = %v", err)
	}
	if err := b.AppendUint(3); err != nil {
		t.Fatalf("AppendUint(3) error = %v", err)
	}
	if err := b.EndArray(); err != nil {
		t.Fatalf("EndArray() error = %v", err)
	}

	root, err := b.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root.Type != TypeArray || root.Length != 3 {
		t.Fatalf("root = %+v, want TypeArray/3", *root)
	}

	var got []uint64
	for c := root.Child; c != nil; c = c.Next {
		got = append(got, c.Uint())
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("children = %v, want [1 2 3]", got)
	}
	if root.Child.Parent != root {
		t.Fatalf("Child.Parent = %p, want %p", root.Child.Parent, root)
	}
	if root.Child.Next.Prev != root.Child {
		t.Fatalf("second child's Prev does not point back at first child")
	}
}

func TestGraphBuilderNestedMapOfArrays(t *testing.T) {
	// {"a": [1, 2]}
	pool := make([]Item, 8)
	b, err := NewGraphBuilder(pool)
	if err != nil {
		t.Fatalf("NewGraphBuilder() error = %v", err)
	}
	if err := b.BeginMap(); err != nil {
		t.Fatalf("BeginMap() error = %v", err)
	}
	if err := b.AppendStr("a"); err != nil {
		t.Fatalf("AppendStr() error = %v", err)
	}
	if err := b.BeginArray(); err != nil {
		t.Fatalf("BeginArray() error = %v", err)
	}
	if err := b.AppendUint(1); err != nil {
		t.Fatalf("AppendUint(1) error = %v", err)
	}
	if err := b.AppendUint(2); err != nil {
		t.Fatalf("AppendUint(2) error = %v", err)
	}
	if err := b.EndArray(); err != nil {
		t.Fatalf("EndArray() error = %v", err)
	}
	if err := b.EndMap(); err != nil {
		t.Fatalf("EndMap() error = %v", err)
	}

	root, err := b.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root.Type != TypeMap || root.Length != 2 {
		t.Fatalf("root = %+v, want TypeMap/2 (doubled pair count)", *root)
	}

	key, value, err := root.MapItem(0)
	if err != nil {
		t.Fatalf("MapItem(0) error = %v", err)
	}
	k, err := key.Str()
	if err != nil || k != "a" {
		t.Fatalf("key = %q, %v, want %q", k, err, "a")
	}
	if value.Type != TypeArray || value.Length != 2 {
		t.Fatalf("value = %+v, want TypeArray/2", value)
	}
}

func TestGraphBuilderEndArrayRejectsWrongContainer(t *testing.T) {
	pool := make([]Item, 4)
	b, _ := NewGraphBuilder(pool)
	if err := b.BeginMap(); err != nil {
		t.Fatalf("BeginMap() error = %v", err)
	}
	if err := b.EndArray(); err != ErrWrongMode {
		t.Fatalf("EndArray() error = %v, want ErrWrongMode", err)
	}
}

func TestGraphBuilderEndMapRejectsOddPairCount(t *testing.T) {
	pool := make([]Item, 4)
	b, _ := NewGraphBuilder(pool)
	if err := b.BeginMap(); err != nil {
		t.Fatalf("BeginMap() error = %v", err)
	}
	if err := b.AppendStr("a"); err != nil {
		t.Fatalf("AppendStr() error = %v", err)
	}
	if err := b.EndMap(); err != ErrInvalidKeyValuePair {
		t.Fatalf("EndMap() error = %v, want ErrInvalidKeyValuePair", err)
	}
}

func TestGraphBuilderRootRejectsUnclosedContainer(t *testing.T) {
	pool := make([]Item, 4)
	b, _ := NewGraphBuilder(pool)
	if err := b.BeginArray(); err != nil {
		t.Fatalf("BeginArray() error = %v", err)
	}
	if _, err := b.Root(); err != ErrWrongMode {
		t.Fatalf("Root() error = %v, want ErrWrongMode", err)
	}
}

func TestGraphBuilderRootRejectsEmpty(t *testing.T) {
	pool := make([]Item, 4)
	b, _ := NewGraphBuilder(pool)
	if _, err := b.Root(); err != ErrEmptyItemPool {
		t.Fatalf("Root() error = %v, want ErrEmptyItemPool", err)
	}
}

func TestGraphBuilderRejectsSecondRoot(t *testing.T) {
	pool := make([]Item, 4)
	b, _ := NewGraphBuilder(pool)
	if err := b.AppendUint(1); err != nil {
		t.Fatalf("AppendUint(1) error = %v", err)
	}
	if err := b.AppendUint(2); err != ErrWrongMode {
		t.Fatalf("AppendUint(2) error = %v, want ErrWrongMode", err)
	}
}

func TestGraphBuilderExhaustsPool(t *testing.T) {
	pool := make([]Item, 1)
	b, _ := NewGraphBuilder(pool)
	if err := b.AppendUint(1); err != nil {
		t.Fatalf("AppendUint(1) error = %v", err)
	}
	if err := b.AppendUint(2); err != ErrEndOfItemPool {
		t.Fatalf("AppendUint(2) error = %v, want ErrEndOfItemPool", err)
	}
}

func TestNewGraphBuilderRejectsNilPool(t *testing.T) {
	if _, err := NewGraphBuilder(nil); err != ErrNilItemPool {
		t.Fatalf("NewGraphBuilder(nil) error = %v, want ErrNilItemPool", err)
	}
}
