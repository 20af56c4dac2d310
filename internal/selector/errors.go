package selector

import "errors"

var (
	ErrEmptyText        = errors.New("selector: empty text")
	ErrEmptySubCategory = errors.New("selector: empty sub category id")
	ErrSearchFailed     = errors.New("selector: search failed")
)
