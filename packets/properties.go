package packets

import "encoding/binary"

// Shape identifies which of the seven wire shapes a property's value uses
// (spec section 3.2). The property registry (properties_registry.go) maps
// each tag to exactly one Shape.
type Shape uint8

const (
	ShapeU8 Shape = iota
	ShapeU16
	ShapeU32
	ShapeVarInt
	ShapeString
	ShapeBinary
	ShapeStringPair
)

// PropertyValue is a small fixed-layout union big enough to hold any of the
// seven property shapes, tagged by Shape. This realizes design note 9's
// "type-erased value buffer... a small fixed-layout union keyed by a
// one-byte shape index" without reflection or interface boxing for the
// scalar shapes; Str and Bin alias the input buffer in ModeView exactly
// like the standalone string/binary decoders.
type PropertyValue struct {
	Shape  Shape
	U8     uint8
	U16    uint16
	U32    uint32
	VarInt int
	Str    string
	Bin    []byte
	Pair   StringPair
}

func valU8(v uint8) PropertyValue     { return PropertyValue{Shape: ShapeU8, U8: v} }
func valU16(v uint16) PropertyValue   { return PropertyValue{Shape: ShapeU16, U16: v} }
func valU32(v uint32) PropertyValue   { return PropertyValue{Shape: ShapeU32, U32: v} }
func valVarInt(v int) PropertyValue   { return PropertyValue{Shape: ShapeVarInt, VarInt: v} }
func valString(v string) PropertyValue { return PropertyValue{Shape: ShapeString, Str: v} }
func valBinary(v []byte) PropertyValue { return PropertyValue{Shape: ShapeBinary, Bin: v} }
func valPair(v StringPair) PropertyValue {
	return PropertyValue{Shape: ShapeStringPair, Pair: v}
}

// Property is one decoded (tag, value) pair.
type Property struct {
	ID    uint8
	Value PropertyValue
}

// PropertyList is the owning, encoder-facing representation of design note
// 9: a contiguous dynamic array of properties (in place of the original's
// linked list), built by encoders and by ModeOwning decodes.
type PropertyList struct {
	Items []Property
}

// Add appends a property to the list. User Property is the only tag that
// may legally appear more than once; neither Add, appendProperties nor
// ValidateForPacketType enforces uniqueness. Duplicates are rejected only
// when a list is decoded (decodeProperties and PropertyView.Next).
func (l *PropertyList) Add(tag uint8, v PropertyValue) {
	l.Items = append(l.Items, Property{ID: tag, Value: v})
}

func (l *PropertyList) AddU8(tag uint8, v uint8)       { l.Add(tag, valU8(v)) }
func (l *PropertyList) AddU16(tag uint8, v uint16)     { l.Add(tag, valU16(v)) }
func (l *PropertyList) AddU32(tag uint8, v uint32)     { l.Add(tag, valU32(v)) }
func (l *PropertyList) AddVarInt(tag uint8, v int)     { l.Add(tag, valVarInt(v)) }
func (l *PropertyList) AddString(tag uint8, v string)  { l.Add(tag, valString(v)) }
func (l *PropertyList) AddBinary(tag uint8, v []byte)  { l.Add(tag, valBinary(v)) }
func (l *PropertyList) AddUserProperty(k, v string) {
	l.Add(PropUserProperty, valPair(StringPair{Key: k, Value: v}))
}

// Get returns the first property with the given tag, if any.
func (l *PropertyList) Get(tag uint8) (PropertyValue, bool) {
	if l == nil {
		return PropertyValue{}, false
	}
	for _, p := range l.Items {
		if p.ID == tag {
			return p.Value, true
		}
	}
	return PropertyValue{}, false
}

// appendProperty writes one tag+value pair to dst.
func appendProperty(dst []byte, p Property) []byte {
	dst = append(dst, p.ID)
	switch p.Value.Shape {
	case ShapeU8:
		dst = append(dst, p.Value.U8)
	case ShapeU16:
		dst = binary.BigEndian.AppendUint16(dst, p.Value.U16)
	case ShapeU32:
		dst = binary.BigEndian.AppendUint32(dst, p.Value.U32)
	case ShapeVarInt:
		dst = appendVarInt(dst, p.Value.VarInt)
	case ShapeString:
		dst = appendString(dst, p.Value.Str)
	case ShapeBinary:
		dst = appendBinary(dst, p.Value.Bin)
	case ShapeStringPair:
		dst = appendStringPair(dst, p.Value.Pair)
	}
	return dst
}

// appendProperties appends the VarInt-length-prefixed property list to dst.
// A nil list encodes as a single zero byte (spec section 3.2).
func appendProperties(dst []byte, l *PropertyList) []byte {
	if l == nil || len(l.Items) == 0 {
		return append(dst, 0x00)
	}

	lenPos := len(dst)
	dst = append(dst, 0) // placeholder, 1-byte guess
	bodyStart := len(dst)

	for _, p := range l.Items {
		dst = appendProperty(dst, p)
	}

	bodyLen := len(dst) - bodyStart
	if bodyLen < 128 {
		dst[lenPos] = byte(bodyLen)
		return dst
	}

	lenBytes := EncodeVarInt(bodyLen)
	extra := len(lenBytes) - 1
	dst = append(dst, make([]byte, extra)...)
	copy(dst[bodyStart+extra:], dst[bodyStart:bodyStart+bodyLen])
	copy(dst[lenPos:], lenBytes)
	return dst
}

// decodeProperty decodes one tag+value pair from the front of data (data
// must already be sliced to the property list's own extent). Returns the
// property and the number of bytes consumed, including the tag byte.
func decodeProperty(data []byte, mode Mode) (Property, int, error) {
	if len(data) == 0 {
		return Property{}, 0, notEnoughData("property tag")
	}
	tag := data[0]
	info, ok := propertyRegistry[tag]
	if !ok {
		return Property{}, 0, badData("property tag", nil)
	}

	rest := data[1:]
	var val PropertyValue
	var n int
	var err error

	switch info.shape {
	case ShapeU8:
		if len(rest) < 1 {
			return Property{}, 0, notEnoughData("property u8 value")
		}
		val, n = valU8(rest[0]), 1
	case ShapeU16:
		if len(rest) < 2 {
			return Property{}, 0, notEnoughData("property u16 value")
		}
		val, n = valU16(binary.BigEndian.Uint16(rest)), 2
	case ShapeU32:
		if len(rest) < 4 {
			return Property{}, 0, notEnoughData("property u32 value")
		}
		val, n = valU32(binary.BigEndian.Uint32(rest)), 4
	case ShapeVarInt:
		v, vn, vErr := decodeVarIntBuf(rest)
		if vErr != nil {
			return Property{}, 0, vErr
		}
		val, n = valVarInt(v), vn
	case ShapeString:
		s, sn, sErr := decodeString(rest, mode)
		if sErr != nil {
			return Property{}, 0, sErr
		}
		val, n = valString(s), sn
	case ShapeBinary:
		b, bn, bErr := decodeBinary(rest, mode)
		if bErr != nil {
			return Property{}, 0, bErr
		}
		val, n = valBinary(b), bn
	case ShapeStringPair:
		pr, pn, pErr := decodeStringPair(rest, mode)
		if pErr != nil {
			return Property{}, 0, pErr
		}
		val, n = valPair(pr), pn
	}
	if err != nil {
		return Property{}, 0, err
	}
	return Property{ID: tag, Value: val}, 1 + n, nil
}

// decodeProperties reads the VarInt-length-prefixed property list from the
// front of buf in the given mode, enforcing the at-most-once rule of spec
// section 3.2 (User Property excepted). Returns the list (nil if empty) and
// the total number of bytes consumed, including the length prefix.
func decodeProperties(buf []byte, mode Mode) (*PropertyList, int, error) {
	if len(buf) == 0 {
		return nil, 0, notEnoughData("property list length")
	}
	propLen, n, err := decodeVarIntBuf(buf)
	if err != nil {
		return nil, 0, err
	}
	total := n + propLen
	if len(buf) < total {
		return nil, 0, notEnoughData("property list body")
	}
	if propLen == 0 {
		return nil, total, nil
	}

	body := buf[n:total]
	list := &PropertyList{}
	var seen uint64
	offset := 0
	for offset < len(body) {
		p, consumed, dErr := decodeProperty(body[offset:], mode)
		if dErr != nil {
			return nil, 0, dErr
		}
		if p.ID != PropUserProperty {
			bit := uint64(1) << p.ID
			if seen&bit != 0 {
				return nil, 0, badData("duplicate property", nil)
			}
			seen |= bit
		}
		list.Items = append(list.Items, p)
		offset += consumed
	}
	return list, total, nil
}

// PropertyView is the buffer-backed cursor over a property list's byte
// extent described by spec section 4.3: each Next call decodes one property
// and returns its tag and value, without building an Items slice. When the
// view's mode is ModeView, strings and binaries decoded through it alias
// the original buffer; in ModeOwning they are copies.
type PropertyView struct {
	body []byte
	pos  int
	seen uint64
	mode Mode
}

// newPropertyView parses the VarInt length prefix and returns a cursor over
// the property list's body plus the total bytes consumed (including the
// length prefix) — analogous to decodeProperties but without allocating an
// Items slice. Strings and binaries yielded by Next alias buf when mode is
// ModeView.
func newPropertyView(buf []byte, mode Mode) (PropertyView, int, error) {
	if len(buf) == 0 {
		return PropertyView{}, 0, notEnoughData("property list length")
	}
	propLen, n, err := decodeVarIntBuf(buf)
	if err != nil {
		return PropertyView{}, 0, err
	}
	total := n + propLen
	if len(buf) < total {
		return PropertyView{}, 0, notEnoughData("property list body")
	}
	return PropertyView{body: buf[n:total], mode: mode}, total, nil
}

// Next decodes the next property in the list. ok is false once the cursor
// has consumed the whole extent; err is non-nil on a malformed property or
// a disallowed duplicate.
func (v *PropertyView) Next() (tag uint8, val PropertyValue, ok bool, err error) {
	if v.pos >= len(v.body) {
		return 0, PropertyValue{}, false, nil
	}
	p, n, dErr := decodeProperty(v.body[v.pos:], v.mode)
	if dErr != nil {
		return 0, PropertyValue{}, false, dErr
	}
	if p.ID != PropUserProperty {
		bit := uint64(1) << p.ID
		if v.seen&bit != 0 {
			return 0, PropertyValue{}, false, badData("duplicate property", nil)
		}
		v.seen |= bit
	}
	v.pos += n
	return p.ID, p.Value, true, nil
}

// ValidateForPacketType checks every property in the list against the
// registry's allow-mask for packetType (spec sections 3.4(e), 4.3, 6.3).
// When willContext is true, each property is checked against the Will
// Properties bit (bit 0) instead of packetType's bit.
func (l *PropertyList) ValidateForPacketType(packetType uint8, willContext bool) error {
	if l == nil {
		return nil
	}
	for _, p := range l.Items {
		info, ok := propertyRegistry[p.ID]
		if !ok {
			return badData("unknown property in validation", nil)
		}
		if !info.allowedIn(packetType, willContext) {
			return badData("property not allowed for packet type", nil)
		}
	}
	return nil
}
