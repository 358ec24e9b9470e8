// Package listing renders the dispatcher's frozen function tables as a
// human- or machine-readable directory, backing the `fnswitch list` CLI
// subcommand. It owns no dispatch logic of its own; it only reads
// dispatch.Dispatcher.Libraries() and formats it.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/fnswitch/internal/dispatch"
)

// Entry is one receiver's sorted method-name directory, ready to print or
// marshal.
type Entry struct {
	Receiver string
	Static   []string
	Instance []string
}

// Build reads d's libraries and naturally sorts each method-name list, so
// overload families like Substring/Substring2-style labels and any
// version-like identifiers in method names order the way a human expects
// rather than plain lexicographic (ASCII) order.
func Build(d *dispatch.Dispatcher) []Entry {
	libs := d.Libraries()
	entries := make([]Entry, len(libs))
	for i, l := range libs {
		entries[i] = Entry{
			Receiver: l.Receiver,
			Static:   sortedNatural(l.Static),
			Instance: sortedNatural(l.Instance),
		}
	}
	return entries
}

func sortedNatural(names []string) []string {
	out := append([]string(nil), names...)
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out
}

// JSON renders entries as the `list --json` output: one object per
// receiver with "receiver", "static", and "instance" keys, built
// incrementally with sjson.Set rather than struct-tag marshaling, matching
// the ad hoc JSON construction style the rest of this module's CLI favors
// for small, fixed-shape output documents.
func JSON(entries []Entry) (string, error) {
	doc := "[]"
	var err error
	for i, e := range entries {
		base := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, base+".receiver", e.Receiver)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".static", e.Static)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".instance", e.Instance)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Text renders entries as the plain-text `list` output: one line per
// receiver, methods comma-joined, static and instance methods on separate
// lines when both are non-empty.
func Text(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		if len(e.Static) > 0 {
			fmt.Fprintf(&sb, "%s (static): %s\n", e.Receiver, strings.Join(e.Static, ", "))
		}
		if len(e.Instance) > 0 {
			fmt.Fprintf(&sb, "%s (instance): %s\n", e.Receiver, strings.Join(e.Instance, ", "))
		}
	}
	return sb.String()
}

// ReceiverNames extracts just the "receiver" field from a JSON document
// produced by JSON, using gjson — this is the roundtrip path the roundtrip
// test exercises to confirm JSON and Build agree with each other.
func ReceiverNames(doc string) []string {
	var names []string
	gjson.Parse(doc).ForEach(func(_, value gjson.Result) bool {
		names = append(names, value.Get("receiver").String())
		return true
	})
	return names
}
