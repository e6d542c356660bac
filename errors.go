package ecbor

import "strconv"

// ErrorCode is a small, stable numeric error identifier. It implements the
// error interface directly, in the same spirit as syscall.Errno: callers
// that only care whether decoding succeeded can treat it as a normal Go
// error, while callers that need a stable, switchable value (e.g. across
// an FFI boundary) can compare against the exported constants.
type ErrorCode uint16

const (
	// ErrOK is the zero value; no implementation ever returns it as an error.
	ErrOK ErrorCode = 0
	// ErrUnknown marks an internal invariant violation that should not be
	// reachable from any well-formed call.
	ErrUnknown ErrorCode = 1

	// Misuse: a required argument was nil or a context was used incorrectly.
	ErrNilInputBuffer  ErrorCode = 11
	ErrNilOutputBuffer ErrorCode = 12
	ErrNilItemPool     ErrorCode = 13
	ErrNilValue        ErrorCode = 14
	ErrNilArray        ErrorCode = 15
	ErrNilMap          ErrorCode = 16
	ErrNilItem         ErrorCode = 20
	ErrWrongMode       ErrorCode = 30

	// Bounds: the buffer or item pool ran out, or a value didn't fit.
	ErrInvalidEndOfBuffer    ErrorCode = 50
	ErrEndOfItemPool         ErrorCode = 51
	ErrEmptyItemPool         ErrorCode = 52
	ErrIndexOutOfBounds      ErrorCode = 53
	ErrWontReturnIndefinite  ErrorCode = 54
	ErrWontReturnDefinite    ErrorCode = 55
	ErrValueOverflow         ErrorCode = 56
	ErrMaxDepthExceeded      ErrorCode = 57
	ErrWontEncodeIndefinite  ErrorCode = 58

	// Semantic: the input bytes don't form valid CBOR under this decoder's
	// rules, or the caller asked the encoder to emit something it can't.
	ErrCurrentlyNotSupported  ErrorCode = 100
	ErrInvalidAdditional      ErrorCode = 101
	ErrInvalidChunkMajorType  ErrorCode = 102
	ErrNestedIndefiniteString ErrorCode = 103
	ErrInvalidKeyValuePair    ErrorCode = 104
	ErrInvalidStopCode        ErrorCode = 105
	ErrInvalidType            ErrorCode = 106

	// Control sentinels: not user-facing failures, but internal signals
	// threaded between the recursive decode steps. errEndOfIndefinite
	// reaches a caller of Decode whenever the item Decode itself reads is
	// a stop code (see ErrEndOfIndefinite).
	errEndOfBuffer      ErrorCode = 200
	errEndOfIndefinite  ErrorCode = 201
)

var errorText = map[ErrorCode]string{
	ErrOK:                     "ok",
	ErrUnknown:                "unknown internal error",
	ErrNilInputBuffer:         "input buffer is nil",
	ErrNilOutputBuffer:        "output buffer is nil",
	ErrNilItemPool:            "item pool is nil",
	ErrNilValue:               "value pointer is nil",
	ErrNilArray:               "array item is nil",
	ErrNilMap:                 "map item is nil",
	ErrNilItem:                "item is nil",
	ErrWrongMode:              "decoder or encoder used in the wrong mode",
	ErrInvalidEndOfBuffer:     "buffer ended before a well-formed item could be read",
	ErrEndOfItemPool:          "item pool exhausted",
	ErrEmptyItemPool:          "item pool is empty",
	ErrIndexOutOfBounds:       "index out of bounds",
	ErrWontReturnIndefinite:   "operation does not support indefinite-length items",
	ErrWontReturnDefinite:     "operation does not support definite-length items",
	ErrValueOverflow:          "value does not fit in the requested integer width",
	ErrMaxDepthExceeded:       "maximum nesting depth exceeded",
	ErrWontEncodeIndefinite:   "indefinite-length items cannot be encoded in this mode",
	ErrCurrentlyNotSupported:  "item type is recognized but not currently supported",
	ErrInvalidAdditional:      "invalid additional information byte",
	ErrInvalidChunkMajorType:  "string chunk has the wrong major type",
	ErrNestedIndefiniteString: "indefinite-length strings cannot nest",
	ErrInvalidKeyValuePair:    "map has an odd number of items",
	ErrInvalidStopCode:        "stop code encountered outside an indefinite container",
	ErrInvalidType:            "operation is not valid for this item's type",
	errEndOfBuffer:            "end of buffer",
	errEndOfIndefinite:        "end of indefinite-length container",
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	if s, ok := errorText[e]; ok {
		return s
	}
	return "ecbor: unrecognized error code " + strconv.Itoa(int(e))
}

// ErrEndOfIndefinite is the exported alias of the control sentinel that
// Decode returns when the item it reads is a stop code: for a Decoder from
// NewDecoder, a stop code outside any container (such as a bare 0xFF);
// for a streamed Decoder, any stop code, including the one closing an
// indefinite container whose header it returned earlier. A stop code met
// inside a container, tag or string that the decoder walks itself never
// reaches the caller as this value.
const ErrEndOfIndefinite = errEndOfIndefinite

// ErrEndOfBuffer is returned by Decode when the buffer has been fully
// consumed and no further item remains to be read; analogous to io.EOF.
const ErrEndOfBuffer = errEndOfBuffer
