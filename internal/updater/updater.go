package updater

import (
	"net/http"
	"time"
)

// Release is the subset of a GitHub release the checker cares about.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Checker performs release lookups against the GitHub API.
type Checker struct {
	currentVersion string
	httpClient     *http.Client
	apiBase        string
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (used in tests).
func WithAPIBase(base string) Option {
	return func(ch *Checker) {
		ch.apiBase = base
	}
}

// New creates a Checker for the given running version.
func New(currentVersion string, opts ...Option) *Checker {
	ch := &Checker{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		apiBase:        "https://api.github.com",
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// CurrentVersion returns the version this checker was created with.
func (ch *Checker) CurrentVersion() string {
	return ch.currentVersion
}
