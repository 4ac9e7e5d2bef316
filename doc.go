// Package sbewire is the runtime behind schema-generated Simple Binary
// Encoding codecs.
//
// A message is an 8-byte header followed by a fixed-size block of scalars,
// fixed arrays and composites, then repeating groups, then length-prefixed
// variable data. Everything is little-endian and read or written in place
// over caller-owned bytes; nothing here allocates on the encode or decode
// path.
//
// Generated code builds on a handful of pieces:
//
//   - ReadBuf and WriteBuf are bounds-checked windows over a byte slice.
//   - MessageHeaderEncoder and MessageHeaderDecoder handle the header.
//   - Cursor tracks the moving limit of one message. Composites and groups
//     borrow it through a Token and give it back when done; a codec that no
//     longer holds the token fails with ErrCursorLent.
//   - Stage keeps groups and var data in schema order.
//   - ArrayEncoder, EnumSpec and the var data helpers cover the remaining
//     field shapes.
//
// Every failure is an *Error carrying a Kind and one of the package's
// sentinel errors, so callers can use errors.Is or IsBounds.
package sbewire
