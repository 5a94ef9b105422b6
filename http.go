package httpbuster

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Client is a net/http Client that sends every request with the run's default headers and never follows redirects.
// It is safe for concurrent use once built.
type Client struct {
	*http.Client
	Header http.Header

	// ReadTitle extracts the <title> of HTML responses.
	ReadTitle bool
}

// NewClient builds the shared HTTP client for a run.
func NewClient(config Config) (*Client, error) {
	headers, err := ParseHeaders(config.Headers)
	if err != nil {
		return nil, err
	}

	cookie, err := CookieHeader(config.Cookies)
	if err != nil {
		return nil, err
	}

	if cookie != "" {
		headers.Set("Cookie", cookie)
	}

	if headers.Get("User-Agent") == "" {
		userAgent := config.UserAgent
		if userAgent == "" {
			userAgent = DefaultUserAgent
		}
		headers.Set("User-Agent", userAgent)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: config.Workers,
	}
	if config.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		// 3xx responses are results, not something to follow.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &Client{
		Client:    httpClient,
		Header:    headers,
		ReadTitle: config.Display.ShowTitle,
	}, nil
}

// Response is the part of an HTTP response the formatter needs.
// The body is read and discarded so only its length is kept.
type Response struct {
	StatusCode    int
	URL           string
	Location      string
	ContentLength int
	Title         string
}

// Get sends a GET request for target and reads the whole response body.
func (c *Client) Get(ctx context.Context, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header = c.Header.Clone()
	if req.Header == nil {
		req.Header = http.Header{}
	}

	// net/http ignores a Host entry in the header map.
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	response := &Response{
		StatusCode: resp.StatusCode,
		URL:        target,
		Location:   resp.Header.Get("Location"),
	}
	if resp.Request != nil {
		response.URL = resp.Request.URL.String()
	}

	if c.ReadTitle && strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		response.ContentLength = len(body)
		response.Title = pageTitle(body)
		return response, nil
	}

	length, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return nil, err
	}

	response.ContentLength = int(length)
	return response, nil
}

func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// TargetURL joins a base URL and a candidate path, adding a path separator between them if needed.
func TargetURL(base, candidate string, addSlash bool) string {
	target := base
	if !strings.HasSuffix(base, "/") {
		target += "/"
	}

	target += candidate
	if addSlash {
		target += "/"
	}
	return target
}
