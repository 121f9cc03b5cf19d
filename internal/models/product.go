package models

// Product is a catalog entry used as reading material for text reading tasks.
type Product struct {
	ID          int    `json:"id" yaml:"id" bson:"id" example:"1"`
	Title       string `json:"title" yaml:"title" bson:"title" example:"iPhone 9"`
	Description string `json:"description" yaml:"description" bson:"description" example:"An apple mobile which is nothing like apple."`
}

// ProductListResponse is the response for listing the catalog.
type ProductListResponse struct {
	Products []Product `json:"products"`
}
