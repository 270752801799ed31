package transcript

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

// Line is a parsed caption segment in milliseconds. EndMs is always
// StartMs + DurationMs.
type Line struct {
	StartMs    int64
	DurationMs int64
	EndMs      int64
	Content    string
}

// Parse turns a caption document into lines in document order. An empty
// document gives an empty slice. A missing dur attribute is a zero-length
// line; a missing or unreadable start is an error.
func Parse(doc *youtube.TimedText) ([]Line, error) {
	if doc == nil || len(doc.Texts) == 0 {
		return []Line{}, nil
	}
	out := make([]Line, 0, len(doc.Texts))
	for i, t := range doc.Texts {
		start, err := secondsAttr(t.Start, false)
		if err != nil {
			return nil, fmt.Errorf("text element %d: start: %w", i, err)
		}
		dur, err := secondsAttr(t.Dur, true)
		if err != nil {
			return nil, fmt.Errorf("text element %d: dur: %w", i, err)
		}
		startMs, durMs := start.Milliseconds(), dur.Milliseconds()
		out = append(out, Line{
			StartMs:    startMs,
			DurationMs: durMs,
			EndMs:      startMs + durMs,
			Content:    html.UnescapeString(t.Content),
		})
	}
	return out, nil
}

// ParseXML decodes and parses a raw caption document.
func ParseXML(r io.Reader) ([]Line, error) {
	doc, err := youtube.DecodeTimedText(r)
	if err != nil {
		return nil, err
	}
	return Parse(doc)
}

// secondsAttr reads a decimal seconds value such as "1.767". The decimal is
// converted with integer arithmetic so 1.767 is exactly 1767ms.
func secondsAttr(raw string, optional bool) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if optional {
			return 0, nil
		}
		return 0, fmt.Errorf("missing value")
	}
	if !isDecimal(raw) {
		return 0, fmt.Errorf("invalid seconds value %q", raw)
	}
	d, err := time.ParseDuration(raw + "s")
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value %q", raw)
	}
	return d, nil
}

func isDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
