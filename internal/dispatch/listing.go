package dispatch

// LibraryListing is one receiver's exposed method names, split the way
// §4.5 splits dispatch itself: names reachable through exec_static versus
// exec_instance. A library with no table in one direction (e.g. Math has
// no instance table) reports an empty, non-nil slice.
type LibraryListing struct {
	Receiver string
	Static   []string
	Instance []string
}

// Libraries returns one LibraryListing per receiver (§4.4), in the same
// fixed order Receiver's identity switch uses. It exists for the `list`
// CLI subcommand and its snapshot test (internal/listing) — the dispatcher
// itself never calls this on its hot path.
func (d *Dispatcher) Libraries() []LibraryListing {
	return []LibraryListing{
		{Receiver: String.String(), Static: d.stringLib.static.Names(), Instance: d.stringLib.instance.Names()},
		{Receiver: StringArray.String(), Static: []string{}, Instance: d.stringArrayLib.instance.Names()},
		{Receiver: Int.String(), Static: []string{}, Instance: []string{}},
		{Receiver: Version.String(), Static: d.versionLib.static.Names(), Instance: d.versionLib.instance.Names()},
		{Receiver: Guid.String(), Static: d.guidLib.static.Names(), Instance: []string{}},
		{Receiver: Path.String(), Static: d.pathLib.static.Names(), Instance: []string{}},
		{Receiver: Math.String(), Static: d.mathLib.static.Names(), Instance: []string{}},
		{Receiver: Directory.String(), Static: d.directoryLib.static.Names(), Instance: []string{}},
		{Receiver: Char.String(), Static: d.charLib.static.Names(), Instance: []string{}},
		{Receiver: Regex.String(), Static: d.regexLib.static.Names(), Instance: []string{}},
		{Receiver: Intrinsic.String(), Static: d.intrinsicLib.static.Names(), Instance: []string{}},
	}
}
