package request

// CreateProductRequest represents a product creation request. Price is a
// decimal amount, e.g. 19.99.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	InStock     *bool   `json:"in_stock"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	InStock     *bool    `json:"in_stock"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}
