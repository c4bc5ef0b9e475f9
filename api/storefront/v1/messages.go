package storefrontv1

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Category     string `json:"category"`
	CategoryName string `json:"category_name,omitempty"`
	Image        string `json:"image"`
	Description  string `json:"description"`
}

type CartItem struct {
	Product   *Product `json:"product"`
	Quantity  int32    `json:"quantity"`
	LineTotal int64    `json:"line_total"`
}

type Cart struct {
	Items             []*CartItem `json:"items"`
	TotalItems        int32       `json:"total_items"`
	TotalPrice        int64       `json:"total_price"`
	TotalPriceDisplay string      `json:"total_price_display"`
	Currency          string      `json:"currency"`
}

// CartPreview is the collapsed cart summary: the first lines plus a count of
// the lines not shown.
type CartPreview struct {
	Items     []*CartItem `json:"items"`
	Remaining int32       `json:"remaining"`
}

type View struct {
	SelectedCategory string       `json:"selected_category"`
	Categories       []*Category  `json:"categories"`
	Products         []*Product   `json:"products"`
	Cart             *Cart        `json:"cart"`
	Preview          *CartPreview `json:"preview"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type ListProductsRequest struct {
	Category string `json:"category,omitempty"`
}

func (r *ListProductsRequest) GetCategory() string {
	if r == nil {
		return ""
	}
	return r.Category
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type GetProductRequest struct {
	ID int64 `json:"id"`
}

func (r *GetProductRequest) GetID() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
}

func (r *AddItemRequest) GetProductID() int64 {
	if r == nil {
		return 0
	}
	return r.ProductID
}

type GetCartRequest struct{}

type SelectCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

func (r *SelectCategoryRequest) GetCategoryID() string {
	if r == nil {
		return ""
	}
	return r.CategoryID
}

type GetViewRequest struct{}
