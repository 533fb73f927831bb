package dto

type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	CNPJ  string `json:"cnpj" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type LinkGuestRequest struct {
	GuestID uint `json:"guestId" binding:"required"`
}
