package dto

import "pousada/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// DateLayout định dạng ngày dùng trong toàn bộ request/response
const DateLayout = "02/01/2006"
