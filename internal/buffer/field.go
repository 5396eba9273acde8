// Package buffer holds the text slots edited by jwtui and the cursor-aware
// edit operations that act on them.
//
// There are exactly four slots, one per Field. Each slot is a Buffer: a
// sequence of runes plus a cursor offset measured in runes. Every edit keeps
// the cursor inside [0, Len()], so callers never have to validate positions.
package buffer

// Field identifies one of the four editable slots.
type Field int

const (
	Token Field = iota
	Header
	Payload
	SigningKey
)

// NumFields is the number of editable slots.
const NumFields = 4

// Fields lists every field in focus-cycle order.
var Fields = [NumFields]Field{Token, Header, Payload, SigningKey}

// Next returns the field after f in the cycle Token, Header, Payload,
// SigningKey, wrapping back to Token.
func (f Field) Next() Field {
	return (f + 1) % NumFields
}

// String returns a stable lowercase identifier, used in logs.
func (f Field) String() string {
	switch f {
	case Token:
		return "token"
	case Header:
		return "header"
	case Payload:
		return "payload"
	case SigningKey:
		return "signing-key"
	default:
		return "unknown"
	}
}

// Title returns the panel label for f.
func (f Field) Title() string {
	switch f {
	case Token:
		return "JWT String"
	case Header:
		return "Header"
	case Payload:
		return "Payload"
	case SigningKey:
		return "Signing Key"
	default:
		return ""
	}
}

// IsJSON reports whether the field is expected to hold a JSON fragment.
func (f Field) IsJSON() bool {
	return f == Header || f == Payload
}
