package listing

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/fnswitch/internal/dispatch"
)

func TestBuildCoversEveryReceiver(t *testing.T) {
	d := dispatch.New(dispatch.Options{})
	entries := Build(d)
	if len(entries) != 11 {
		t.Fatalf("Build returned %d entries, want 11 (one per receiver)", len(entries))
	}
}

func TestJSONRoundTripsReceiverNames(t *testing.T) {
	d := dispatch.New(dispatch.Options{})
	entries := Build(d)
	doc, err := JSON(entries)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	names := ReceiverNames(doc)
	if len(names) != len(entries) {
		t.Fatalf("ReceiverNames returned %d names, want %d", len(names), len(entries))
	}
	for i, e := range entries {
		if names[i] != e.Receiver {
			t.Errorf("names[%d] = %q, want %q", i, names[i], e.Receiver)
		}
	}
}

func TestListingJSONSnapshot(t *testing.T) {
	d := dispatch.New(dispatch.Options{})
	entries := Build(d)
	doc, err := JSON(entries)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	snaps.MatchSnapshot(t, "list_json", doc)
}
