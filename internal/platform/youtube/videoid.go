package youtube

import (
	"regexp"
	"strings"
)

// Markers that precede the video id in the link shapes YouTube hands out,
// including percent-encoded variants seen when links are pasted from
// redirect URLs.
var videoIDMarkers = []string{
	"watch?v=",
	"/videos/",
	"embed/",
	"youtu.be/",
	"/v/",
	"/e/",
	"watch?v%3D",
	"watch?feature=player_embedded&v=",
	"%2Fvideos%2F",
	"embed%2F",
	"youtu.be%2F",
	"%2Fv%2F",
}

var videoIDPattern = compileVideoIDPattern(videoIDMarkers)

func compileVideoIDPattern(markers []string) *regexp.Regexp {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		quoted = append(quoted, regexp.QuoteMeta(m))
	}
	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)([^#&?\n]*)`)
}

// ExtractVideoID returns the id following the first recognised marker in
// rawURL, up to the next '#', '&', '?' or newline. It reports false when no
// marker is present or the id would be empty.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}
