package value

import (
	"crypto/rand"
	"fmt"
)

// Guid is a 16-byte GUID/UUID value, laid out the way System.Guid formats
// it by default: 8-4-4-4-12 lowercase hex groups.
type Guid struct {
	bytes [16]byte
}

// NewGuid generates a random (version-agnostic) Guid, backing the
// Guid.NewGuid() static call.
func NewGuid() Guid {
	var g Guid
	_, _ = rand.Read(g.bytes[:])
	return g
}

func (g Guid) Bytes() [16]byte { return g.bytes }

// String renders the default "D" format: 8-4-4-4-12, lowercase, no braces.
func (g Guid) String() string { return g.Format("D") }

// Format renders the Guid per .NET's standard Guid.ToString(format) codes:
// "N" (no dashes), "D" (dashes, default), "B" (braces), "P" (parens).
// Any other format is rejected by the caller before reaching here (§4.4.4);
// an unrecognized format falls back to "D".
func (g Guid) Format(format string) string {
	b := g.bytes
	body := fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8], b[9],
		b[10], b[11], b[12], b[13], b[14], b[15])
	switch format {
	case "N":
		return fmt.Sprintf("%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x",
			b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
	case "B":
		return "{" + body + "}"
	case "P":
		return "(" + body + ")"
	default:
		return body
	}
}
