package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ProblemSelector is the panel holding the problem statement on LeetCode.
const ProblemSelector = `[data-layout-path="/ts0/t0"]`

var (
	ErrProblemNotFound = errors.New("problem statement not found on page")
	ErrUnsupportedHost = errors.New("unsupported problem host")
)

type FetchResult struct {
	Title   string
	URL     string
	Content string
}

// allowedHosts are the problem sites the agent may scrape.
var allowedHosts = map[string]bool{
	"leetcode.com":     true,
	"www.leetcode.com": true,
	"leetcode.cn":      true,
}

type Fetcher struct {
	http      *http.Client
	userAgent string
	// origin replaces scheme and host of outgoing requests when set (tests)
	origin string
}

func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return errors.New("too many redirects")
				}
				if !allowedHosts[strings.ToLower(req.URL.Hostname())] {
					return fmt.Errorf("%w: redirect to %s", ErrUnsupportedHost, req.URL.Host)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// ValidateProblemURL checks that rawURL points at a supported problem site.
func ValidateProblemURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid url: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %s", ErrUnsupportedHost, u.Scheme)
	}
	if u.User != nil || u.Port() != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHost, u.Host)
	}
	if !allowedHosts[strings.ToLower(u.Hostname())] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHost, u.Host)
	}
	return u, nil
}

// FetchProblem downloads a problem page and extracts its statement.
func (f *Fetcher) FetchProblem(ctx context.Context, rawURL string) (*FetchResult, error) {
	u, err := ValidateProblemURL(rawURL)
	if err != nil {
		return nil, err
	}

	target := u.String()
	if f.origin != "" {
		target = f.origin + u.RequestURI()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}

	res, err := ParseProblem(resp.Body)
	if err != nil {
		return nil, err
	}
	res.URL = rawURL
	return res, nil
}

// ParseProblem extracts the problem statement from a page body.
func ParseProblem(r io.Reader) (*FetchResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	panel := doc.Find(ProblemSelector).First()
	if panel.Length() == 0 {
		return nil, ErrProblemNotFound
	}
	panel.Find("script, style").Remove()

	content := compact(panel.Text())
	if content == "" {
		return nil, ErrProblemNotFound
	}

	return &FetchResult{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Content: content,
	}, nil
}

// compact drops every space and newline from the scraped text, the same
// way the browser agent flattens it before sending.
func compact(text string) string {
	return strings.NewReplacer(" ", "", "\n", "", "\u00a0", "").Replace(text)
}
