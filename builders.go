package ecbor

// This file holds the pure Item constructors and the two composers
// (Array, Map) that wire a flat slice of already-built Items into a
// parent/child/sibling chain, ready for the encoder. They correspond
// directly to ecbor_int/uint/bstr/str/tag/fp32/fp64/bool/null/undefined,
// the *_token builders and ecbor_array/ecbor_map.

// Uint builds a TypeUint item.
func Uint(value uint64) Item {
	return Item{Type: TypeUint, uvalue: value, Size: 1}
}

// Int builds a TypeUint or TypeNint item depending on sign, mirroring
// ecbor_int's dispatch.
func Int(value int64) Item {
	if value >= 0 {
		return Uint(uint64(value))
	}
	return Item{Type: TypeNint, ivalue: value, uvalue: uint64(-1 - value), Size: 1}
}

// Bstr builds a definite TypeBstr item over a borrowed byte slice.
func Bstr(value []byte) Item {
	return Item{Type: TypeBstr, bytes: value, Length: len(value)}
}

// Str builds a definite TypeStr item over a copy of value's bytes (the
// string-to-[]byte conversion copies).
func Str(value string) Item {
	return Item{Type: TypeStr, bytes: []byte(value), Length: len(value)}
}

// Tag builds a TypeTag item wrapping child with the given tag number.
// The returned Item's Child points at child; child.Parent is not set
// here (the encoder does not need it, only Child).
func Tag(child *Item, tagValue uint64) Item {
	return Item{Type: TypeTag, Child: child, tagValue: tagValue, Length: 1}
}

// FP32 builds a TypeFP32 item.
func FP32(value float32) Item {
	return Item{Type: TypeFP32, fp32: value}
}

// FP64 builds a TypeFP64 item.
func FP64(value float64) Item {
	return Item{Type: TypeFP64, fp64: value}
}

// Bool builds a TypeBool item.
func Bool(value bool) Item {
	v := uint64(0)
	if value {
		v = 1
	}
	return Item{Type: TypeBool, uvalue: v}
}

// Null builds a TypeNull item.
func Null() Item { return Item{Type: TypeNull} }

// Undefined builds a TypeUndefined item.
func Undefined() Item { return Item{Type: TypeUndefined} }

// ArrayToken builds a definite, empty-of-children TypeArray item with
// the given declared length; the encoder expects length children linked
// through Child/Next before encoding it (see Array).
func ArrayToken(length int) Item {
	return Item{Type: TypeArray, Length: length}
}

// IndefiniteArrayToken builds an indefinite TypeArray item. Only valid
// for the streamed encoder: indefinite items cannot be fully serialized
// in one Encode call, since their child count isn't known up front.
func IndefiniteArrayToken() Item {
	return Item{Type: TypeArray, IsIndefinite: true}
}

// MapToken builds a definite TypeMap item; length is the number of
// key/value pairs (invariant 3 stores length*2 slots internally, so
// Length here is doubled to stay consistent with the decoder's
// convention, matching the map's Len() accessor dividing back by two).
func MapToken(pairs int) Item {
	return Item{Type: TypeMap, Length: pairs * 2}
}

// IndefiniteMapToken builds an indefinite TypeMap item.
func IndefiniteMapToken() Item {
	return Item{Type: TypeMap, IsIndefinite: true}
}

// StopCode builds a standalone stop-code token, used only by the
// streamed encoder to terminate an indefinite string/array/map it
// previously opened.
func StopCode() Item {
	return Item{Type: typeStopCode}
}

// Array links items (length of them) under out as Child/Next siblings.
// out must point at the storage the caller intends to keep (a local
// variable's address or a pool slot) since that is the only address
// Go lets a composer wire a genuine back-pointer to. Matches
// ecbor_array exactly, including the original's choice to set Parent
// only on items[0]: later siblings are reached by following Next, not
// by their own Parent pointer.
func Array(out *Item, items []Item) error {
	if out == nil {
		return ErrNilArray
	}
	*out = Item{Type: TypeArray, Length: len(items)}
	if len(items) == 0 {
		return nil
	}
	out.Child = &items[0]
	items[0].Parent = out
	for i := range items {
		if i+1 < len(items) {
			items[i].Next = &items[i+1]
		}
	}
	return nil
}

// Map links keys[i]/values[i] pairs under out as alternating
// Child/Next siblings (key, value, key, value, ...). Matches
// ecbor_map's interleaving, with Length stored doubled per invariant 3,
// and the same items[0].Parent-only wiring Array uses (keys[0] and
// values[0] point back at out; later keys/values do not).
func Map(out *Item, keys, values []Item) error {
	if out == nil {
		return ErrNilMap
	}
	if len(keys) != len(values) {
		return ErrInvalidKeyValuePair
	}
	*out = Item{Type: TypeMap, Length: len(keys) * 2}
	if len(keys) == 0 {
		return nil
	}

	out.Child = &keys[0]
	keys[0].Parent = out
	values[0].Parent = out
	for i := range keys {
		keys[i].Next = &values[i]
		if i+1 < len(keys) {
			values[i].Next = &keys[i+1]
		}
	}
	return nil
}
