package dto

type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
