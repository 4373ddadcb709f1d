package response

type DeleteProductResponse struct {
	ProductID int64 `json:"product_id"`
	Deleted   bool  `json:"deleted"`
}
