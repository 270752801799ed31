package youtube

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

var (
	// ErrNoCaptions means the service answered but has no track for the
	// requested language.
	ErrNoCaptions = errors.New("youtube: no captions available")
	// ErrMalformedCaptions means the body was present but not valid XML.
	ErrMalformedCaptions = errors.New("youtube: malformed caption document")
)

const maxBodyBytes = 8 << 20

type Config struct {
	BaseURL     string
	DefaultLang string
	Timeout     time.Duration
}

func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "http://video.google.com"
	}
	if strings.TrimSpace(c.DefaultLang) == "" {
		c.DefaultLang = "en"
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	return c
}

// TimedText is the decoded caption document: every <text> element in
// document order with its raw attributes.
type TimedText struct {
	Texts []TimedTextEntry
}

// TimedTextEntry holds the attributes of one <text> element and all
// character data below it, nested markup included.
type TimedTextEntry struct {
	Start   string
	Dur     string
	Content string
}

// Track is one entry of the caption track listing for a video.
type Track struct {
	ID             string `xml:"id,attr"`
	Name           string `xml:"name,attr"`
	LangCode       string `xml:"lang_code,attr"`
	LangOriginal   string `xml:"lang_original,attr"`
	LangTranslated string `xml:"lang_translated,attr"`
	LangDefault    bool   `xml:"lang_default,attr"`
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if len(msg) > 512 {
		msg = msg[:512] + "..."
	}
	if msg == "" {
		msg = "<empty body>"
	}
	return fmt.Sprintf("youtube timedtext http %d: %s", e.StatusCode, msg)
}

type TimedTextClient struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func NewTimedTextClient(log *logger.Logger, cfg Config) *TimedTextClient {
	cfg = cfg.withDefaults()
	return &TimedTextClient{
		log: log.With("client", "TimedTextClient"),
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *TimedTextClient) DefaultLang() string { return c.cfg.DefaultLang }

// FetchCaptions downloads the caption track for videoID in lang (the
// configured default when empty). An empty body yields ErrNoCaptions.
func (c *TimedTextClient) FetchCaptions(ctx context.Context, videoID, lang string) (*TimedText, error) {
	if strings.TrimSpace(lang) == "" {
		lang = c.cfg.DefaultLang
	}
	q := url.Values{}
	q.Set("lang", lang)
	q.Set("v", videoID)

	raw, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoCaptions
	}
	return DecodeTimedText(bytes.NewReader(raw))
}

// ListTracks returns the caption tracks offered for videoID. No tracks is
// an empty slice, not an error.
func (c *TimedTextClient) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	q := url.Values{}
	q.Set("type", "list")
	q.Set("v", videoID)

	raw, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []Track{}, nil
	}
	var doc struct {
		XMLName xml.Name `xml:"transcript_list"`
		Tracks  []Track  `xml:"track"`
	}
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCaptions, err)
	}
	if doc.Tracks == nil {
		return []Track{}, nil
	}
	return doc.Tracks, nil
}

func (c *TimedTextClient) get(ctx context.Context, q url.Values) ([]byte, error) {
	endpoint := c.cfg.BaseURL + "/timedtext?" + q.Encode()
	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build timedtext request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read timedtext body: %w", err)
	}
	c.log.Debug("timedtext fetched",
		"query", q.Encode(),
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// DecodeTimedText collects every <text> element of the document, at any
// depth, in document order. Syntax errors are reported as
// ErrMalformedCaptions.
func DecodeTimedText(r io.Reader) (*TimedText, error) {
	dec := xml.NewDecoder(r)
	doc := &TimedText{Texts: []TimedTextEntry{}}
	sawElement := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCaptions, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if se.Name.Local != "text" {
			continue
		}
		entry, err := decodeTextEntry(dec, se)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCaptions, err)
		}
		doc.Texts = append(doc.Texts, entry)
	}
	if !sawElement {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedCaptions)
	}
	return doc, nil
}

func decodeTextEntry(dec *xml.Decoder, se xml.StartElement) (TimedTextEntry, error) {
	entry := TimedTextEntry{}
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "start":
			entry.Start = a.Value
		case "dur":
			entry.Dur = a.Value
		}
	}
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return entry, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
	entry.Content = sb.String()
	return entry, nil
}
