package pagination

// PaginationMeta contains metadata about the displayed page.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta builds metadata for page out of totalPages.
// totalPages is taken as given; after a failed fetch the view passes 1.
func NewPaginationMeta(page, totalPages, totalItems int) PaginationMeta {
	return PaginationMeta{
		CurrentPage: page,
		PageSize:    PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: page > MinPage,
		HasNext:     page < totalPages,
	}
}
