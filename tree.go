package ecbor

// treeState enumerates the five-state machine driving DecodeTree,
// ported directly from ecbor_decode_tree's CONSUME_NODE/ANALYZE_STOP_CODE/
// LINK_FIRST_NODE/LINK_NODE/CHECK_END_OF_DEFINITE loop. It stays
// non-recursive by keeping all the "where am I in the tree" state in
// curNode plus the explicit parent/child/next links already threaded
// through the Item pool, rather than a call stack.
type treeState int

const (
	stateConsumeNode treeState = iota
	stateAnalyzeStopCode
	stateLinkFirstNode
	stateLinkNode
	stateCheckEndOfDefinite
	stateEnd
)

// TreeDecoder decodes an entire CBOR buffer into a linked tree of Items
// drawn from a caller-supplied pool. Unlike Decoder, a single call to
// DecodeTree consumes the whole buffer (or fails), since every item's
// children must be linked before the call returns.
type TreeDecoder struct {
	buf    []byte
	pool   []Item
	limits Limits
}

// NewTreeDecoder creates a TreeDecoder over buf, using pool as the
// backing storage for every Item the decode produces. pool's length
// is the item capacity: DecodeTree fails with ErrEndOfItemPool if the
// buffer contains more items than pool can hold.
func NewTreeDecoder(buf []byte, pool []Item) (*TreeDecoder, error) {
	return NewTreeDecoderWithLimits(buf, pool, DefaultLimits())
}

// NewTreeDecoderWithLimits is NewTreeDecoder with explicit Limits.
func NewTreeDecoderWithLimits(buf []byte, pool []Item, limits Limits) (*TreeDecoder, error) {
	if buf == nil {
		return nil, ErrNilInputBuffer
	}
	if pool == nil {
		return nil, ErrNilItemPool
	}
	return &TreeDecoder{buf: buf, pool: pool, limits: limits.normalized()}, nil
}

// DecodeTree consumes the entire buffer and returns the root item. It
// can be called again on the same TreeDecoder (there is no cursor to
// reset beyond the pool's used-count, which DecodeTree always resets
// to zero on entry): per the resolved design question, decode_tree is
// a dedicated, idempotent entry point, never re-entered implicitly by
// Decode/NewDecoder.
func (td *TreeDecoder) DecodeTree() (*Item, error) {
	d := &Decoder{buf: td.buf, mode: modeDecodeStreamed, limits: td.limits}

	state := stateConsumeNode
	lastWasStopCode := false
	var curNode, newNode *Item
	nItems := 0
	rc := ErrOK

	for state != stateEnd {
		switch state {
		case stateConsumeNode:
			if nItems >= len(td.pool) {
				rc = ErrEndOfItemPool
				state = stateEnd
				break
			}
			newNode = &td.pool[nItems]
			nItems++

			itemRC := d.decodeNext(newNode, false, TypeNone, 0)
			switch itemRC {
			case errEndOfIndefinite:
				state = stateAnalyzeStopCode
				nItems--
			case errEndOfBuffer:
				if badEnd := treeBadEnd(curNode, lastWasStopCode); badEnd != ErrOK {
					rc = badEnd
					state = stateEnd
					break
				}
				state = stateEnd
			case ErrOK:
				if curNode != nil {
					state = stateLinkNode
				} else {
					state = stateLinkFirstNode
				}
			default:
				rc = itemRC
				state = stateEnd
			}

		case stateAnalyzeStopCode:
			if curNode == nil {
				// A lone stop code with no enclosing indefinite container:
				// nothing opened it, so there is nothing to close.
				rc = ErrInvalidEndOfBuffer
				state = stateEnd
				break
			}
			if (curNode.Type != TypeArray && curNode.Type != TypeMap) ||
				!curNode.IsIndefinite ||
				(curNode.IsIndefinite && lastWasStopCode) {
				curNode = curNode.Parent
				if curNode == nil {
					rc = ErrUnknown
					state = stateEnd
					break
				}
			}

			if (curNode.Type == TypeArray || curNode.Type == TypeMap) && curNode.IsIndefinite {
				state = stateCheckEndOfDefinite
				lastWasStopCode = true
			} else {
				rc = ErrInvalidStopCode
				state = stateEnd
			}

		case stateLinkFirstNode:
			curNode = newNode
			newNode.Index = 0
			state = stateConsumeNode

		case stateLinkNode:
			if isUnfinished(curNode, lastWasStopCode) {
				curNode.Child = newNode
				newNode.Parent = curNode
				newNode.Index = 0
			} else {
				curNode.Next = newNode
				newNode.Prev = curNode
				newNode.Parent = curNode.Parent
				newNode.Index = curNode.Index + 1
			}
			curNode = newNode
			lastWasStopCode = false
			state = stateCheckEndOfDefinite

		case stateCheckEndOfDefinite:
			if !isUnfinished(curNode, lastWasStopCode) {
				for curNode.Parent != nil && closesParent(curNode) {
					curNode = curNode.Parent
					lastWasStopCode = false
				}
			}
			state = stateConsumeNode
		}
	}

	if rc != ErrOK {
		return nil, rc
	}
	if nItems == 0 {
		return nil, ErrEmptyItemPool
	}
	return &td.pool[0], nil
}

// isUnfinished reports whether node still expects more children: an
// as-yet-childless tag, a non-empty definite array/map with no child
// linked yet, or an indefinite array/map whose stop code hasn't been
// seen.
func isUnfinished(node *Item, lastWasStopCode bool) bool {
	if node.Type == TypeTag {
		return node.Child == nil
	}
	if node.Type == TypeArray || node.Type == TypeMap {
		if !node.IsIndefinite {
			return node.Length > 0 && node.Child == nil
		}
		return !lastWasStopCode
	}
	return false
}

// closesParent reports whether curNode is the last child its parent
// expects: the final slot of a definite array/map, or any child of a
// tag (a tag always has exactly one child).
func closesParent(curNode *Item) bool {
	parent := curNode.Parent
	if parent.Type == TypeTag {
		return true
	}
	if (parent.Type == TypeArray || parent.Type == TypeMap) && !parent.IsIndefinite {
		return parent.Length == curNode.Index+1
	}
	return false
}

// treeBadEnd replicates ecbor_decode_tree's end-of-buffer sanity checks:
// a well-formed document must end with curNode sitting at the top level,
// not mid-tag, mid-definite-container, or mid-indefinite-container.
func treeBadEnd(curNode *Item, lastWasStopCode bool) ErrorCode {
	if curNode == nil {
		return ErrInvalidEndOfBuffer
	}
	if curNode.Parent != nil {
		return ErrInvalidEndOfBuffer
	}
	if curNode.Type == TypeTag && curNode.Child == nil {
		return ErrInvalidEndOfBuffer
	}
	if curNode.Type == TypeMap || curNode.Type == TypeArray {
		if !curNode.IsIndefinite && curNode.Child == nil && curNode.Length > 0 {
			return ErrInvalidEndOfBuffer
		}
		if curNode.IsIndefinite && !lastWasStopCode {
			return ErrInvalidEndOfBuffer
		}
	}
	return ErrOK
}
