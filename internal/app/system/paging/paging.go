// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/dalemusser/waffle/pantry/query"
)

// Default and maximum page sizes. Defaults can be overridden at startup
// via Configure; per-request sizes are clamped to the maximum so an
// unscoped request can never pull the whole collection in one page.
const (
	DefaultPageSize = 20
	DefaultMaxSize  = 100
)

var mu sync.RWMutex

var (
	defSize = DefaultPageSize
	maxSize = DefaultMaxSize
)

// Configure overrides the default and maximum page sizes. Zero values keep
// the current setting. Called once during startup.
func Configure(def, max int) {
	mu.Lock()
	defer mu.Unlock()
	if def > 0 {
		defSize = def
	}
	if max > 0 {
		maxSize = max
	}
}

// Page is a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 { return int64(p.Number) * int64(p.Size) }

// Limit returns the page size as int64 for Mongo Find().SetLimit().
func (p Page) Limit() int64 { return int64(p.Size) }

// ParsePage extracts "page" and "size" query parameters. Missing or
// invalid values fall back to page 0 with the configured default size;
// oversized requests are clamped.
func ParsePage(r *http.Request) Page {
	mu.RLock()
	def, max := defSize, maxSize
	mu.RUnlock()

	p := Page{Number: 0, Size: def}
	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			p.Number = n
		}
	}
	if s := query.Get(r, "size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			p.Size = n
		}
	}
	if p.Size > max {
		p.Size = max
	}
	return p
}

// ParseSort extracts the "sort" query parameter (a single field name).
// Empty means no ordering was requested.
func ParseSort(r *http.Request) string {
	return query.Get(r, "sort")
}
