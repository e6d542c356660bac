package ecbor

// Encoder serializes Items into a caller-supplied output buffer. Like
// Decoder, it performs no hidden allocation: every write goes directly
// into buf at the current position, and Len reports how much of it has
// been used so far — mirroring ecbor_get_encoded_buffer_size.
type Encoder struct {
	buf    []byte
	pos    int
	mode   mode
	depth  int
	limits Limits
}

// NewEncoder creates an Encoder that, given a definite item, serializes
// it and its entire subtree in one Encode call (depth-first, matching
// ecbor_encode's ECBOR_MODE_ENCODE behavior). Indefinite items are
// rejected with ErrWontEncodeIndefinite: definite-only encoding cannot
// know where a caller intends to stop an open-ended container.
func NewEncoder(buf []byte) (*Encoder, error) {
	return newEncoder(buf, modeEncode, DefaultLimits())
}

// NewStreamedEncoder creates an Encoder that writes only the header of
// whatever Item it's given — including definite arrays/maps/tags/strings,
// whose payload and children the caller must then Encode themselves,
// one item at a time, finishing an indefinite container with StopCode().
// This mirrors ECBOR_MODE_ENCODE_STREAMED exactly: the original gates
// payload/child copying behind ECBOR_MODE_ENCODE specifically, not just
// "is this item indefinite", so even a definite string written through
// the streamed encoder needs a following manual copy by the caller.
func NewStreamedEncoder(buf []byte) (*Encoder, error) {
	return newEncoder(buf, modeEncodeStreamed, DefaultLimits())
}

func newEncoder(buf []byte, m mode, limits Limits) (*Encoder, error) {
	if buf == nil {
		return nil, ErrNilOutputBuffer
	}
	return &Encoder{buf: buf, mode: m, limits: limits.normalized()}, nil
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.pos }

// Bytes returns the portion of the output buffer written so far.
func (e *Encoder) Bytes() []byte { return e.buf[:e.pos] }

func (e *Encoder) bytesLeft() int { return len(e.buf) - e.pos }

// Encode writes item to the buffer, recursing into its children when
// the Encoder is in definite (non-streamed) mode.
func (e *Encoder) Encode(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	rc := e.encodeItem(item, 0)
	if rc == ErrOK {
		return nil
	}
	return rc
}

func (e *Encoder) encodeHeader(majorType Type, additional byte) ErrorCode {
	if e.bytesLeft() < 1 {
		return ErrInvalidEndOfBuffer
	}
	e.buf[e.pos] = (byte(majorType&0x7) << 5) | (additional & 0x1f)
	e.pos++
	return ErrOK
}

func (e *Encoder) encodeUint(majorType Type, value uint64) ErrorCode {
	var size int
	switch {
	case value < additional1Byte:
		size = 1
	case value <= 0xFF:
		size = 2
	case value <= 0xFFFF:
		size = 3
	case value <= 0xFFFFFFFF:
		size = 5
	default:
		size = 9
	}
	if e.bytesLeft() < size {
		return ErrInvalidEndOfBuffer
	}

	switch size {
	case 1:
		e.buf[e.pos] = (byte(majorType&0x7) << 5) | byte(value&0x1f)
		e.pos++
	case 2:
		e.buf[e.pos] = (byte(majorType&0x7) << 5) | additional1Byte
		e.buf[e.pos+1] = byte(value)
		e.pos += 2
	case 3:
		e.buf[e.pos] = (byte(majorType&0x7) << 5) | additional2Byte
		putUint16BigEndian(e.buf[e.pos+1:e.pos+3], uint16(value))
		e.pos += 3
	case 5:
		e.buf[e.pos] = (byte(majorType&0x7) << 5) | additional4Byte
		putUint32BigEndian(e.buf[e.pos+1:e.pos+5], uint32(value))
		e.pos += 5
	case 9:
		e.buf[e.pos] = (byte(majorType&0x7) << 5) | additional8Byte
		putUint64BigEndian(e.buf[e.pos+1:e.pos+9], value)
		e.pos += 9
	}
	return ErrOK
}

func (e *Encoder) encodeItem(item *Item, depth int) ErrorCode {
	if depth > e.limits.MaxDepth {
		return ErrMaxDepthExceeded
	}

	switch item.Type {
	case TypeUint:
		return e.encodeUint(TypeUint, item.uvalue)

	case TypeNint:
		return e.encodeUint(TypeNint, uint64(-1-item.ivalue))

	case TypeBstr, TypeStr:
		return e.encodeString(item, depth)

	case TypeArray, TypeMap:
		return e.encodeContainer(item, depth)

	case TypeTag:
		return e.encodeTag(item, depth)

	case typeStopCode:
		return e.encodeHeader(majorTypeSpecial, additionalIndefinite)

	case TypeFP32:
		if rc := e.encodeHeader(majorTypeSpecial, additional4Byte); rc != ErrOK {
			return rc
		}
		if e.bytesLeft() < 4 {
			return ErrInvalidEndOfBuffer
		}
		putFP32BigEndian(e.buf[e.pos:e.pos+4], item.fp32)
		e.pos += 4
		return ErrOK

	case TypeFP64:
		if rc := e.encodeHeader(majorTypeSpecial, additional8Byte); rc != ErrOK {
			return rc
		}
		if e.bytesLeft() < 8 {
			return ErrInvalidEndOfBuffer
		}
		putFP64BigEndian(e.buf[e.pos:e.pos+8], item.fp64)
		e.pos += 8
		return ErrOK

	case TypeBool:
		v := byte(simpleFalse)
		if item.uvalue != 0 {
			v = simpleTrue
		}
		return e.encodeHeader(majorTypeSpecial, v)

	case TypeNull:
		return e.encodeHeader(majorTypeSpecial, simpleNull)

	case TypeUndefined:
		return e.encodeHeader(majorTypeSpecial, simpleUndefined)

	default:
		return ErrInvalidType
	}
}

func (e *Encoder) encodeString(item *Item, depth int) ErrorCode {
	if item.IsIndefinite {
		if e.mode == modeEncode {
			return ErrWontEncodeIndefinite
		}
		return e.encodeHeader(item.Type, additionalIndefinite)
	}

	if rc := e.encodeUint(item.Type, uint64(item.Length)); rc != ErrOK {
		return rc
	}

	if e.mode == modeEncode && item.Length > 0 {
		if item.bytes == nil {
			return ErrNilValue
		}
		if e.bytesLeft() < item.Length {
			return ErrInvalidEndOfBuffer
		}
		copy(e.buf[e.pos:], item.bytes)
		e.pos += item.Length
	}
	return ErrOK
}

func (e *Encoder) encodeContainer(item *Item, depth int) ErrorCode {
	if item.IsIndefinite {
		if e.mode == modeEncode {
			return ErrWontEncodeIndefinite
		}
		return e.encodeHeader(item.Type, additionalIndefinite)
	}

	writtenLen := item.Length
	if item.Type == TypeMap {
		if item.Length%2 != 0 {
			return ErrInvalidKeyValuePair
		}
		writtenLen = item.Length / 2
	}

	if rc := e.encodeUint(item.Type, uint64(writtenLen)); rc != ErrOK {
		return rc
	}

	if e.mode == modeEncode && item.Length > 0 {
		current := item.Child
		for n := 0; n < item.Length; n++ {
			if current == nil {
				return ErrNilItem
			}
			if rc := e.encodeItem(current, depth+1); rc != ErrOK {
				return rc
			}
			current = current.Next
		}
	}
	return ErrOK
}

func (e *Encoder) encodeTag(item *Item, depth int) ErrorCode {
	if rc := e.encodeUint(TypeTag, item.tagValue); rc != ErrOK {
		return rc
	}
	if e.mode == modeEncode {
		if item.Child == nil {
			return ErrNilItem
		}
		return e.encodeItem(item.Child, depth+1)
	}
	return ErrOK
}
