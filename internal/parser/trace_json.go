package parser

import (
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSON renders t's committed events as a JSON document, built
// incrementally with tidwall/sjson.SetBytes/SetRawBytes rather than a
// single marshal pass over the whole (potentially large) event stream —
// `blang parse --trace --trace-format json` (SPEC_FULL.md §2.4).
func (t *Trace) JSON() ([]byte, error) {
	buf := []byte(`{"events":[]}`)
	for _, e := range t.events {
		obj, err := eventJSON(e)
		if err != nil {
			return nil, err
		}
		buf, err = sjson.SetRawBytes(buf, "events.-1", obj)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func eventJSON(e Event) ([]byte, error) {
	obj := []byte(`{}`)
	var err error
	for _, set := range []struct {
		path string
		val  any
	}{
		{"rule", e.Name},
		{"line", e.Line},
		{"from", e.FromToken},
		{"to", e.ToToken},
	} {
		obj, err = sjson.SetBytes(obj, set.path, set.val)
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// PrettyJSON renders t's events as indented JSON for human reading
// (`blang parse --trace --trace-format json`), via
// tidwall/pretty.Pretty over the same incrementally-built document JSON
// produces.
func (t *Trace) PrettyJSON() ([]byte, error) {
	raw, err := t.JSON()
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}

// Filter returns the committed events whose rule name matches glob (e.g.
// "If*"), via tidwall/match.Match — `blang parse --trace --trace-grep
// <glob>` (SPEC_FULL.md §2.4).
func (t *Trace) Filter(glob string) []Event {
	var out []Event
	for _, e := range t.events {
		if match.Match(e.Name, glob) {
			out = append(out, e)
		}
	}
	return out
}
