package ecbor

// Type identifies the kind of value held by an Item. The first seven
// values mirror the CBOR major types (RFC 7049 §2.1); the rest are the
// major-type-7 (simple/float) values this decoder distinguishes.
type Type int8

const (
	// TypeNone marks a zero-value Item, or one where major type
	// resolution failed.
	TypeNone Type = -1

	TypeUint Type = 0
	TypeNint Type = 1
	TypeBstr Type = 2
	TypeStr  Type = 3
	TypeArray Type = 4
	TypeMap   Type = 5
	TypeTag   Type = 6
	// major type 7 is never surfaced directly; it is always translated to
	// one of the following before an Item is returned to a caller.

	TypeFP16      Type = 8
	TypeFP32      Type = 9
	TypeFP64      Type = 10
	TypeBool      Type = 11
	TypeNull      Type = 12
	TypeUndefined Type = 13

	typeFirst = TypeUint
	typeLast  = TypeUndefined

	// typeStopCode never appears on a decoded Item; it is only used as an
	// internal marker by the builder side when constructing a standalone
	// stop-code token for the streaming encoder.
	typeStopCode Type = 99
)

// additional-information byte meanings (RFC 7049 §2.1).
const (
	additional1Byte     = 24
	additional2Byte     = 25
	additional4Byte     = 26
	additional8Byte     = 27
	additionalIndefinite = 31

	// simple values, carried directly in the additional-info byte of a
	// major-type-7 item.
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23

	majorTypeSpecial = 7
)

// mode governs which operations a Decoder or Encoder accepts; it mirrors
// the original library's context mode field and is never exposed outside
// the package, since in Go each mode has its own constructor.
type mode uint8

const (
	modeDecode mode = iota
	modeDecodeStreamed
	modeDecodeTree
	modeEncode
	modeEncodeStreamed
)
