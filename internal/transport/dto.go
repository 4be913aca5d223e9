package transport

import "github.com/Skotchmaster/items_api/internal/models"

// Request fields are decoded as any so the validator can tell a wrong JSON type
// from a missing value.

type RegisterRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

type LoginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

type ItemRequest struct {
	Name        any `json:"name"`
	Description any `json:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateItemResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type ItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type SearchResponse struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Items []ItemResponse `json:"items"`
}

func NewItemResponse(it models.Item) ItemResponse {
	return ItemResponse{ID: it.ID, Name: it.Name, Description: it.Description}
}

func NewItemList(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResponse(it))
	}
	return out
}
