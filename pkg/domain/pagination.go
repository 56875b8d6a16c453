package domain

import "fmt"

// PageOptions defines offset/limit windowing over a collection listing.
type PageOptions struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	MaxLimit int `json:"max_limit,omitempty"` // Maximum allowed limit
}

// PageResult contains one window of a collection plus paging metadata.
type PageResult struct {
	Records []Record `json:"records"`
	HasNext bool     `json:"has_next"`
	HasPrev bool     `json:"has_prev"`
	Total   int64    `json:"total"`
}

// DefaultPageOptions returns default paging settings
func DefaultPageOptions() *PageOptions {
	return &PageOptions{
		Limit:    50,
		MaxLimit: 1000,
	}
}

// Validate validates page options
func (po *PageOptions) Validate() error {
	if po.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if po.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	if po.MaxLimit > 0 && po.Limit > po.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", po.Limit, po.MaxLimit)
	}
	return nil
}
