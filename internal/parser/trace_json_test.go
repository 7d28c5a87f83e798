package parser

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestTrace_JSON_RoundTripsViaGjson(t *testing.T) {
	tr := NewTrace()
	tr.Emit(Event{Name: "Decl", Line: 1, FromToken: 0, ToToken: 3})
	tr.Emit(Event{Name: "FuncDef", Line: 2, FromToken: 3, ToToken: 10})

	raw, err := tr.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	events := gjson.GetBytes(raw, "events").Array()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %s", len(events), raw)
	}
	if events[0].Get("rule").String() != "Decl" {
		t.Errorf("expected first event rule Decl, got %q", events[0].Get("rule").String())
	}
	if events[1].Get("line").Int() != 2 {
		t.Errorf("expected second event line 2, got %d", events[1].Get("line").Int())
	}
}

func TestTrace_PrettyJSON_IsIndented(t *testing.T) {
	tr := NewTrace()
	tr.Emit(Event{Name: "Decl", Line: 1, FromToken: 0, ToToken: 3})

	pretty, err := tr.PrettyJSON()
	if err != nil {
		t.Fatalf("PrettyJSON() error: %v", err)
	}
	if len(pretty) == 0 {
		t.Fatal("expected non-empty pretty output")
	}
	// gjson must still be able to parse the pretty-printed document.
	if gjson.GetBytes(pretty, "events.0.rule").String() != "Decl" {
		t.Errorf("pretty-printed JSON failed to round-trip, got %s", pretty)
	}
}

func TestTrace_Filter_MatchesGlob(t *testing.T) {
	tr := NewTrace()
	tr.Emit(Event{Name: "IfStmt", Line: 1, FromToken: 0, ToToken: 3})
	tr.Emit(Event{Name: "ForStmt", Line: 2, FromToken: 3, ToToken: 10})
	tr.Emit(Event{Name: "IfElse", Line: 3, FromToken: 10, ToToken: 20})

	got := tr.Filter("If*")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for \"If*\", got %d", len(got))
	}
	if got[0].Name != "IfStmt" || got[1].Name != "IfElse" {
		t.Errorf("unexpected filter results: %+v", got)
	}
}
