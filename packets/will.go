package packets

// Will is the CONNECT payload's will-message trio: properties, topic, and
// payload, emitted by the server on abnormal disconnect (spec section 4.5,
// GLOSSARY "Will message"). Will.Properties is validated under the
// will-context allow-mask (allowMask bit 0), not the CONNECT mask.
type Will struct {
	Properties *PropertyList
	Topic      string
	Payload    []byte
}

func appendWill(dst []byte, w *Will) []byte {
	dst = appendProperties(dst, w.Properties)
	dst = appendString(dst, w.Topic)
	dst = appendBinary(dst, w.Payload)
	return dst
}

func decodeWill(buf []byte, mode Mode) (Will, int, error) {
	var w Will
	offset := 0

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return Will{}, 0, err
	}
	if err := props.ValidateForPacketType(CONNECT, true); err != nil {
		return Will{}, 0, err
	}
	w.Properties = props
	offset += n

	topic, n, err := decodeString(buf[offset:], mode)
	if err != nil {
		return Will{}, 0, err
	}
	w.Topic = topic
	offset += n

	payload, n, err := decodeBinary(buf[offset:], mode)
	if err != nil {
		return Will{}, 0, err
	}
	w.Payload = payload
	offset += n

	return w, offset, nil
}
