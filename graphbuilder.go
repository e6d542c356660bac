package ecbor

// GraphBuilder progressively assembles an Item graph from a caller-supplied
// []Item pool, in the teacher's DocumentBuilder/SliceBuilder idiom: a
// sequence of fluent Append/Begin/End calls instead of pre-sizing and
// manually linking a []Item slice the way Array/Map require. Like the
// tree decoder, every Item it produces comes from pool; its own
// open-container stack and the bytes of AppendStr values are ordinary
// heap allocations.
//
// A GraphBuilder assembles exactly one top-level item; call Root once
// every Begin has a matching End.
type GraphBuilder struct {
	pool []Item
	n    int
	root *Item
	open []graphFrame
}

// graphFrame tracks one still-open ARRAY or MAP container: the container
// itself, the last child linked so far (nil until the first child is
// appended), and how many children have been appended.
type graphFrame struct {
	container *Item
	lastChild *Item
	count     int
}

// NewGraphBuilder creates a GraphBuilder backed by pool.
func NewGraphBuilder(pool []Item) (*GraphBuilder, error) {
	if pool == nil {
		return nil, ErrNilItemPool
	}
	return &GraphBuilder{pool: pool}, nil
}

func (b *GraphBuilder) alloc() (*Item, error) {
	if b.n >= len(b.pool) {
		return nil, ErrEndOfItemPool
	}
	it := &b.pool[b.n]
	*it = Item{}
	b.n++
	return it, nil
}

// link wires item into whatever container is currently open, or sets it
// as the root if nothing is open. Only one root is permitted per
// GraphBuilder, matching the one-item-at-a-time contract Decode/Encode
// already follow.
func (b *GraphBuilder) link(item *Item) error {
	if len(b.open) == 0 {
		if b.root != nil {
			return ErrWrongMode
		}
		b.root = item
		return nil
	}

	frame := &b.open[len(b.open)-1]
	item.Parent = frame.container
	item.Index = frame.count
	if frame.lastChild == nil {
		frame.container.Child = item
	} else {
		frame.lastChild.Next = item
		item.Prev = frame.lastChild
	}
	frame.lastChild = item
	frame.count++
	return nil
}

func (b *GraphBuilder) appendValue(v Item) error {
	it, err := b.alloc()
	if err != nil {
		return err
	}
	v.Parent, v.Child, v.Next, v.Prev, v.Index = nil, nil, nil, nil, 0
	*it = v
	return b.link(it)
}

// AppendUint appends a TypeUint item to the currently open container (or
// sets it as the root, if nothing is open).
func (b *GraphBuilder) AppendUint(value uint64) error { return b.appendValue(Uint(value)) }

// AppendInt appends a TypeUint or TypeNint item depending on sign.
func (b *GraphBuilder) AppendInt(value int64) error { return b.appendValue(Int(value)) }

// AppendStr appends a definite TypeStr item.
func (b *GraphBuilder) AppendStr(value string) error { return b.appendValue(Str(value)) }

// AppendBstr appends a definite TypeBstr item.
func (b *GraphBuilder) AppendBstr(value []byte) error { return b.appendValue(Bstr(value)) }

// AppendBool appends a TypeBool item.
func (b *GraphBuilder) AppendBool(value bool) error { return b.appendValue(Bool(value)) }

// AppendNull appends a TypeNull item.
func (b *GraphBuilder) AppendNull() error { return b.appendValue(Null()) }

// AppendUndefined appends a TypeUndefined item.
func (b *GraphBuilder) AppendUndefined() error { return b.appendValue(Undefined()) }

// AppendFP32 appends a TypeFP32 item.
func (b *GraphBuilder) AppendFP32(value float32) error { return b.appendValue(FP32(value)) }

// AppendFP64 appends a TypeFP64 item.
func (b *GraphBuilder) AppendFP64(value float64) error { return b.appendValue(FP64(value)) }

// BeginArray opens a new definite TypeArray container as the next child
// (or the root), and pushes it onto the open-container stack; every
// subsequent Append/Begin call targets this array until the matching
// EndArray.
func (b *GraphBuilder) BeginArray() error {
	it, err := b.alloc()
	if err != nil {
		return err
	}
	it.Type = TypeArray
	if err := b.link(it); err != nil {
		return err
	}
	b.open = append(b.open, graphFrame{container: it})
	return nil
}

// EndArray closes the array most recently opened by BeginArray, fixing
// its Length to the number of children actually appended.
func (b *GraphBuilder) EndArray() error {
	if len(b.open) == 0 {
		return ErrWrongMode
	}
	frame := b.open[len(b.open)-1]
	if frame.container.Type != TypeArray {
		return ErrWrongMode
	}
	frame.container.Length = frame.count
	b.open = b.open[:len(b.open)-1]
	return nil
}

// BeginMap opens a new definite TypeMap container, analogous to
// BeginArray. Keys and values are appended as an alternating sequence
// (key, value, key, value, ...) via ordinary Append/Begin calls; EndMap
// rejects an odd count.
func (b *GraphBuilder) BeginMap() error {
	it, err := b.alloc()
	if err != nil {
		return err
	}
	it.Type = TypeMap
	if err := b.link(it); err != nil {
		return err
	}
	b.open = append(b.open, graphFrame{container: it})
	return nil
}

// EndMap closes the map most recently opened by BeginMap, fixing its
// Length to the number of key/value slots appended (doubled pair count,
// per invariant 3) and rejecting an unpaired trailing key.
func (b *GraphBuilder) EndMap() error {
	if len(b.open) == 0 {
		return ErrWrongMode
	}
	frame := b.open[len(b.open)-1]
	if frame.container.Type != TypeMap {
		return ErrWrongMode
	}
	if frame.count%2 != 0 {
		return ErrInvalidKeyValuePair
	}
	frame.container.Length = frame.count
	b.open = b.open[:len(b.open)-1]
	return nil
}

// Root returns the completed top-level item. It fails with ErrWrongMode
// if any BeginArray/BeginMap is still unclosed, and ErrEmptyItemPool if
// nothing was ever appended.
func (b *GraphBuilder) Root() (*Item, error) {
	if len(b.open) != 0 {
		return nil, ErrWrongMode
	}
	if b.root == nil {
		return nil, ErrEmptyItemPool
	}
	return b.root, nil
}
