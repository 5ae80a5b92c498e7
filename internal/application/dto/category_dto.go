package dto

// CategoryResponse one category row.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryListResponse wrapper for GET /api/categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
