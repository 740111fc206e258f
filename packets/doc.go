// Package packets implements the OASIS MQTT v5.0 control packet wire format:
// the fixed header, the Variable Byte Integer encoding, length-prefixed
// strings and binary data, the 27-entry property registry with its
// per-packet-type allow-mask, and all fifteen control packet types.
//
// The package is a pure codec. It performs no network I/O and holds no
// session state — every exported function is a pure transformation between
// a byte buffer and a typed packet value (plus, in owning mode, ordinary Go
// allocation). Callers own the transport and session layers.
//
// # Owning vs. view decoding
//
// Every decode entry point accepts a Mode. ModeOwning copies strings and
// binary payloads out of the input buffer, so the result's lifetime is
// independent of the buffer. ModeView aliases the input buffer instead —
// decoded strings and byte slices borrow from it directly — trading their
// copies for a lifetime dependency: the caller must keep the buffer alive
// (and not mutate it) for as long as any view value derived from it is in
// use. The packet value itself, its property list and any topic or
// reason-code slices are still allocated in ModeView.
//
//	hdr, n, err := packets.DecodeFixedHeader(buf)
//	pkt, err := packets.DecodePublish(buf[n:], hdr, packets.ModeOwning)
//
// # Shortcut decoding
//
// Several acknowledgement-family packets (PUBACK, PUBREC, PUBREL, PUBCOMP,
// DISCONNECT, AUTH) may be legitimately truncated on the wire: a short
// remaining length means "there are no properties, and the reason code is
// Success unless one is present," not a malformed packet. Decoders for
// these types report this by returning OutcomeShortcut rather than an
// error.
//
// # Diagnostics
//
// Dump renders any decoded Packet as a human-readable tree for logging or
// the bundled mqttdump command.
package packets
