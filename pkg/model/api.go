package model

import "encoding/json"

// API envelope consumed from the P2H backend. Every endpoint wraps its
// payload in {status, message, payload}.

// Envelope status values.
const (
	APIStatusSuccess = "success"
	APIStatusError   = "error"
)

// Envelope is the standard response wrapper of the P2H API.
type Envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Pagination describes a paginated list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ListOptions are the query parameters accepted by list endpoints.
type ListOptions struct {
	Page     int
	PageSize int
	Kategori Kategori
	Search   string
}

// Defaults used when a ListOptions field is zero.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Normalize fills zero paging fields with the defaults.
func (o ListOptions) Normalize() ListOptions {
	if o.Page <= 0 {
		o.Page = DefaultPage
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	return o
}
