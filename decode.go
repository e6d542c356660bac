package ecbor

// Decoder reads CBOR items, one at a time, from a borrowed byte buffer.
// It never allocates for payload bytes: every string/array/map/tag
// Item it produces keeps its bytes field pointing into buf. A Decoder
// is not safe for concurrent use; build one Decoder per buffer per
// goroutine, exactly as the teacher's Reader documents for its own
// single-writer position-tracked struct.
type Decoder struct {
	buf    []byte
	pos    int
	mode   mode
	limits Limits
}

// NewDecoder creates a Decoder that fully resolves every container it
// reads: arrays, maps and tags are walked eagerly so that Item.Size
// accounts for their entire subtree, letting a caller skip an item by
// advancing Size bytes without recursing into it themselves.
func NewDecoder(buf []byte) (*Decoder, error) {
	return newDecoder(buf, modeDecode, DefaultLimits())
}

// NewDecoderWithLimits is NewDecoder with an explicit resource Limits.
func NewDecoderWithLimits(buf []byte, limits Limits) (*Decoder, error) {
	return newDecoder(buf, modeDecode, limits)
}

// NewStreamedDecoder creates a Decoder that does not walk into
// indefinite-length arrays/maps to compute their full size: Decode
// returns the container's header as its own Item (is_indefinite is
// still populated), and the caller is expected to keep calling Decode
// to read its children until Decode reports the closing stop code by
// returning ErrEndOfIndefinite. Definite
// containers are still only returned as a header in streamed mode too;
// see the module design notes on the mode distinction.
func NewStreamedDecoder(buf []byte) (*Decoder, error) {
	return newDecoder(buf, modeDecodeStreamed, DefaultLimits())
}

// NewStreamedDecoderWithLimits is NewStreamedDecoder with explicit Limits.
func NewStreamedDecoderWithLimits(buf []byte, limits Limits) (*Decoder, error) {
	return newDecoder(buf, modeDecodeStreamed, limits)
}

func newDecoder(buf []byte, m mode, limits Limits) (*Decoder, error) {
	if buf == nil {
		return nil, ErrNilInputBuffer
	}
	return &Decoder{buf: buf, mode: m, limits: limits.normalized()}, nil
}

// Decode reads exactly one item from the buffer into item, overwriting
// its previous contents. It returns ErrEndOfBuffer once the buffer has
// been fully consumed.
func (d *Decoder) Decode(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	rc := d.decodeNext(item, false, TypeNone, 0)
	if rc == ErrOK {
		return nil
	}
	return rc
}

func (d *Decoder) bytesLeft() int { return len(d.buf) - d.pos }

// decodeUintValue reads a uint value encoded via the additional-info
// byte already consumed by the caller, and reports the number of bytes
// the whole field (including that header byte) occupies.
func (d *Decoder) decodeUintValue(additional byte) (value uint64, size int, rc ErrorCode) {
	if additional < additional1Byte {
		return uint64(additional), 1, ErrOK
	}

	var payload int
	switch additional {
	case additional1Byte:
		payload = 1
	case additional2Byte:
		payload = 2
	case additional4Byte:
		payload = 4
	case additional8Byte:
		payload = 8
	default:
		return 0, 0, ErrInvalidAdditional
	}
	if d.bytesLeft() < payload {
		return 0, 0, ErrInvalidEndOfBuffer
	}

	b := d.buf[d.pos : d.pos+payload]
	switch payload {
	case 1:
		value = uint64(b[0])
	case 2:
		value = uint64(uint16FromBigEndian(b))
	case 4:
		value = uint64(uint32FromBigEndian(b))
	case 8:
		value = uint64FromBigEndian(b)
	}
	d.pos += payload
	return value, payload + 1, ErrOK
}

func (d *Decoder) decodeFP32() (value float32, size int, rc ErrorCode) {
	if d.bytesLeft() < 4 {
		return 0, 0, ErrInvalidEndOfBuffer
	}
	value = fp32FromBigEndian(d.buf[d.pos : d.pos+4])
	d.pos += 4
	return value, 5, ErrOK
}

func (d *Decoder) decodeFP64() (value float64, size int, rc ErrorCode) {
	if d.bytesLeft() < 8 {
		return 0, 0, ErrInvalidEndOfBuffer
	}
	value = fp64FromBigEndian(d.buf[d.pos : d.pos+8])
	d.pos += 8
	return value, 9, ErrOK
}

func decodeSimpleValue(item *Item) ErrorCode {
	switch item.uvalue {
	case simpleFalse, simpleTrue:
		item.Type = TypeBool
		if item.uvalue == simpleTrue {
			item.uvalue = 1
		} else {
			item.uvalue = 0
		}
	case simpleNull:
		item.Type = TypeNull
	case simpleUndefined:
		item.Type = TypeUndefined
	default:
		return ErrCurrentlyNotSupported
	}
	return ErrOK
}

// decodeNext is the recursive core shared by top-level items, indefinite
// string chunks (isChunk true, chunkType the enclosing string's type)
// and container children (isChunk false). depth counts container/tag
// nesting purely to defeat pathological input on a memory-managed
// stack; it has no bearing on well-formed documents within MaxDepth.
func (d *Decoder) decodeNext(item *Item, isChunk bool, chunkType Type, depth int) ErrorCode {
	if d.bytesLeft() == 0 {
		return errEndOfBuffer
	}
	if depth > d.limits.MaxDepth {
		return ErrMaxDepthExceeded
	}

	*item = Item{}

	b := d.buf[d.pos]
	majorType := Type((b >> 5) & 0x07)
	additional := b & 0x1f
	d.pos++

	if isChunk && chunkType != majorType {
		if majorType == majorTypeSpecial && additional == additionalIndefinite {
			item.Size = 1
			return errEndOfIndefinite
		}
		return ErrInvalidChunkMajorType
	}

	item.Type = majorType

	switch majorType {
	case TypeUint:
		value, size, rc := d.decodeUintValue(additional)
		item.uvalue, item.Size = value, size
		return rc

	case TypeNint:
		value, size, rc := d.decodeUintValue(additional)
		if rc != ErrOK {
			return rc
		}
		item.uvalue, item.Size = value, size
		item.ivalue = -1 - int64(value)
		return ErrOK

	case TypeBstr, TypeStr:
		return d.decodeString(item, additional, isChunk, depth)

	case TypeArray, TypeMap:
		return d.decodeContainer(item, additional, depth)

	case TypeTag:
		return d.decodeTag(item, additional, depth)

	case majorTypeSpecial:
		return d.decodeSpecial(item, additional)

	default:
		return ErrUnknown
	}
}

func (d *Decoder) decodeString(item *Item, additional byte, isChunk bool, depth int) ErrorCode {
	if additional == additionalIndefinite {
		item.IsIndefinite = true
		item.Size = 1
		item.bytes = d.buf[d.pos:]

		if isChunk {
			return ErrNestedIndefiniteString
		}

		for {
			var chunk Item
			rc := d.decodeNext(&chunk, true, item.Type, depth+1)
			if rc == errEndOfIndefinite {
				item.Size += chunk.Size
				break
			} else if rc == errEndOfBuffer {
				return ErrInvalidEndOfBuffer
			} else if rc != ErrOK {
				return rc
			}
			item.Size += chunk.Size
			item.Length += chunk.Length
			item.chunks++
		}
		return ErrOK
	}

	value, size, rc := d.decodeUintValue(additional)
	if rc != ErrOK {
		return rc
	}
	item.Size = size
	item.Length = int(value)

	if d.bytesLeft() < item.Length {
		return ErrInvalidEndOfBuffer
	}
	item.bytes = d.buf[d.pos : d.pos+item.Length]
	d.pos += item.Length
	item.Size += item.Length

	return ErrOK
}

func (d *Decoder) decodeContainer(item *Item, additional byte, depth int) ErrorCode {
	isMap := item.Type == TypeMap

	if additional == additionalIndefinite {
		item.IsIndefinite = true
		item.Size = 1
		item.bytes = d.buf[d.pos:]

		if d.mode != modeDecodeStreamed {
			for {
				var child Item
				rc := d.decodeNext(&child, false, TypeNone, depth+1)
				if rc == errEndOfIndefinite {
					item.Size += child.Size
					break
				} else if rc == errEndOfBuffer {
					return ErrInvalidEndOfBuffer
				} else if rc != ErrOK {
					return rc
				}
				item.Size += child.Size
				item.Length++
			}
			if isMap && item.Length%2 != 0 {
				return ErrInvalidKeyValuePair
			}
		}
		return ErrOK
	}

	value, size, rc := d.decodeUintValue(additional)
	if rc != ErrOK {
		return rc
	}
	item.Size = size
	item.Length = int(value)
	item.bytes = d.buf[d.pos:]

	if isMap {
		item.Length *= 2
	}

	if d.mode != modeDecodeStreamed {
		for n := 0; n < item.Length; n++ {
			var child Item
			rc := d.decodeNext(&child, false, TypeNone, depth+1)
			if rc == errEndOfIndefinite {
				return ErrInvalidStopCode
			} else if rc == errEndOfBuffer {
				return ErrInvalidEndOfBuffer
			} else if rc != ErrOK {
				return rc
			}
			item.Size += child.Size
		}
	}

	return ErrOK
}

func (d *Decoder) decodeTag(item *Item, additional byte, depth int) ErrorCode {
	value, size, rc := d.decodeUintValue(additional)
	if rc != ErrOK {
		return rc
	}
	item.tagValue = value
	item.Size = size
	item.Length = 1
	item.bytes = d.buf[d.pos:]

	if d.mode != modeDecodeStreamed {
		var child Item
		rc := d.decodeNext(&child, false, TypeNone, depth+1)
		if rc == errEndOfIndefinite {
			return ErrInvalidStopCode
		} else if rc == errEndOfBuffer {
			return ErrInvalidEndOfBuffer
		} else if rc != ErrOK {
			return rc
		}
		item.Size += child.Size
	}
	return ErrOK
}

func (d *Decoder) decodeSpecial(item *Item, additional byte) ErrorCode {
	switch {
	case additional == additionalIndefinite:
		item.Size = 1
		return errEndOfIndefinite

	case additional <= additional1Byte:
		value, size, rc := d.decodeUintValue(additional)
		if rc != ErrOK {
			return rc
		}
		item.uvalue = value
		item.Size = size
		return decodeSimpleValue(item)

	case additional == additional2Byte:
		return ErrCurrentlyNotSupported

	case additional == additional4Byte:
		value, size, rc := d.decodeFP32()
		item.Type = TypeFP32
		item.fp32, item.Size = value, size
		return rc

	case additional == additional8Byte:
		value, size, rc := d.decodeFP64()
		item.Type = TypeFP64
		item.fp64, item.Size = value, size
		return rc

	default:
		return ErrCurrentlyNotSupported
	}
}
