package dispatch

// Receiver identifies the static receiver of a call: either the instance's
// declared type (String, Path, Intrinsic, ...) or, for a call with a live
// instance, the runtime type of that instance overrides it (§4.5 step 1).
//
// This is a small closed set (eleven members) compared by identity, not a
// generic map keyed by name — the distilled spec's design notes call this
// out explicitly: "a series of identity tests beats a generic map for ~10
// entries", and the switch below is exactly that series.
type Receiver int

const (
	String Receiver = iota
	StringArray
	Int
	Version
	Guid
	Path
	Math
	Directory
	Char
	Regex
	Intrinsic
)

func (r Receiver) String() string {
	switch r {
	case String:
		return "String"
	case StringArray:
		return "String[]"
	case Int:
		return "Int32"
	case Version:
		return "Version"
	case Guid:
		return "Guid"
	case Path:
		return "Path"
	case Math:
		return "Math"
	case Directory:
		return "Directory"
	case Char:
		return "Char"
	case Regex:
		return "Regex"
	case Intrinsic:
		return "Intrinsic"
	default:
		return "?"
	}
}
