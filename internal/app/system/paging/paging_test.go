package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/grouphub/internal/app/system/paging"
)

func TestParsePage_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/user-groups", nil)
	p := paging.ParsePage(r)
	if p.Number != 0 {
		t.Errorf("page: got %d, want 0", p.Number)
	}
	if p.Size != paging.DefaultPageSize {
		t.Errorf("size: got %d, want %d", p.Size, paging.DefaultPageSize)
	}
}

func TestParsePage_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/user-groups?page=3&size=25", nil)
	p := paging.ParsePage(r)
	if p.Number != 3 || p.Size != 25 {
		t.Errorf("got page=%d size=%d, want page=3 size=25", p.Number, p.Size)
	}
	if p.Skip() != 75 {
		t.Errorf("Skip: got %d, want 75", p.Skip())
	}
	if p.Limit() != 25 {
		t.Errorf("Limit: got %d, want 25", p.Limit())
	}
}

func TestParsePage_ClampsOversized(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/user-groups?size=100000", nil)
	p := paging.ParsePage(r)
	if p.Size != paging.DefaultMaxSize {
		t.Errorf("size: got %d, want clamp to %d", p.Size, paging.DefaultMaxSize)
	}
}

func TestParsePage_IgnoresGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/user-groups?page=-2&size=zero", nil)
	p := paging.ParsePage(r)
	if p.Number != 0 || p.Size != paging.DefaultPageSize {
		t.Errorf("got page=%d size=%d, want defaults", p.Number, p.Size)
	}
}

func TestParseSort(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/user-groups?sort=name", nil)
	if got := paging.ParseSort(r); got != "name" {
		t.Errorf("sort: got %q, want %q", got, "name")
	}
	r = httptest.NewRequest("GET", "/v1/user-groups", nil)
	if got := paging.ParseSort(r); got != "" {
		t.Errorf("sort: got %q, want empty", got)
	}
}
