package seed

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	fetchTimeout  = 5 * time.Second
	maxImageBytes = 2 << 20
)

var placeholderColors = []string{
	"#4F46E5", "#7C3AED", "#DB2777", "#EA580C", "#CA8A04",
	"#16A34A", "#0891B2", "#0284C7", "#BE185D", "#9F1239",
}

// PlaceholderImage renders an SVG card for the artifact as a data URI. The
// colour depends only on index.
func PlaceholderImage(name string, index int) string {
	color := placeholderColors[index%len(placeholderColors)]
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	title := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(strings.Join(words, " "))

	svg := fmt.Sprintf(`<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="%[1]s" opacity="0.1"/>
  <rect width="100%%" height="100%%" fill="url(#pattern)"/>
  <defs>
    <pattern id="pattern" x="0" y="0" width="40" height="40" patternUnits="userSpaceOnUse">
      <circle cx="20" cy="20" r="2" fill="%[1]s" opacity="0.2"/>
    </pattern>
  </defs>
  <text x="50%%" y="45%%" font-family="Arial, sans-serif" font-size="24" font-weight="bold" fill="%[1]s" text-anchor="middle" dominant-baseline="middle">%[2]s</text>
  <text x="50%%" y="55%%" font-family="Arial, sans-serif" font-size="16" fill="%[1]s" opacity="0.7" text-anchor="middle" dominant-baseline="middle">Archaeological Artifact</text>
</svg>`, color, title)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// ImageFetcher downloads a sample image and returns it as a data URI.
type ImageFetcher interface {
	Fetch(ctx context.Context, index int) (string, error)
}

// HTTPImageFetcher fetches from URLTemplate, which may hold one %d for the index.
type HTTPImageFetcher struct {
	URLTemplate string
	Client      *http.Client
}

func NewHTTPImageFetcher(urlTemplate string) *HTTPImageFetcher {
	return &HTTPImageFetcher{
		URLTemplate: urlTemplate,
		Client:      &http.Client{Timeout: fetchTimeout},
	}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, index int) (string, error) {
	url := f.URLTemplate
	if strings.Contains(url, "%d") {
		url = fmt.Sprintf(url, index)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("fetch image: unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxImageBytes {
		return "", fmt.Errorf("fetch image: larger than %d bytes", maxImageBytes)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}
