package transcript

import (
	"strings"
	"testing"

	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

func TestParseXML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0.4" dur="1">Hi</text>
  <text start="1.767" dur="4.304">don&amp;#39;t &amp;amp; won&amp;#39;t</text>
  <text start="0.1" dur="0.5">earlier but later in document</text>
</transcript>`

	lines, err := ParseXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	want := []Line{
		{StartMs: 400, DurationMs: 1000, EndMs: 1400, Content: "Hi"},
		{StartMs: 1767, DurationMs: 4304, EndMs: 6071, Content: "don't & won't"},
		{StartMs: 100, DurationMs: 500, EndMs: 600, Content: "earlier but later in document"},
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got=%+v want=%+v", i, lines[i], want[i])
		}
	}
}

func TestParseXMLKeepsTextInsideMarkup(t *testing.T) {
	lines, err := ParseXML(strings.NewReader(`<transcript><text start="1" dur="2">Hello <font color="#fff">world</font>!</text></transcript>`))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("unexpected line count: got=%d want=1", len(lines))
	}
	if got, want := lines[0].Content, "Hello world!"; got != want {
		t.Fatalf("content: got=%q want=%q", got, want)
	}
}

func TestParseEndEqualsStartPlusDuration(t *testing.T) {
	doc := &youtube.TimedText{Texts: []youtube.TimedTextEntry{
		{Start: "5.04", Dur: "2.31"},
		{Start: "3599.999", Dur: "0.001"},
		{Start: "12", Dur: "0"},
		{Start: "0.3333", Dur: "0.6667"},
	}}
	lines, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lines[0].StartMs != 5040 || lines[0].DurationMs != 2310 {
		t.Fatalf("unexpected ms conversion: %+v", lines[0])
	}
	for i, l := range lines {
		if l.EndMs != l.StartMs+l.DurationMs {
			t.Fatalf("line %d: end=%d start=%d dur=%d", i, l.EndMs, l.StartMs, l.DurationMs)
		}
	}
}

func TestParseMissingDurIsZero(t *testing.T) {
	lines, err := Parse(&youtube.TimedText{Texts: []youtube.TimedTextEntry{{Start: "2.5", Content: "x"}}})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lines[0].DurationMs != 0 || lines[0].EndMs != 2500 {
		t.Fatalf("unexpected line: %+v", lines[0])
	}
}

func TestParseEmptyDocument(t *testing.T) {
	lines, err := ParseXML(strings.NewReader(`<transcript></transcript>`))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty non-nil slice, got=%v", lines)
	}
	if got, _ := Parse(nil); len(got) != 0 {
		t.Fatalf("Parse(nil) returned lines")
	}
}

func TestParseRejectsBadAttributes(t *testing.T) {
	for _, e := range []youtube.TimedTextEntry{
		{Start: "", Dur: "1"},
		{Start: "abc", Dur: "1"},
		{Start: "-1", Dur: "1"},
		{Start: "1", Dur: "2m"},
	} {
		if _, err := Parse(&youtube.TimedText{Texts: []youtube.TimedTextEntry{e}}); err == nil {
			t.Fatalf("expected error for %+v", e)
		}
	}
}
