package dto

type CreateGuestRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	CityID    *uint  `json:"cityId"`
}

type UpdateGuestRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	CityID    *uint  `json:"cityId"`
}

type GuestResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Lodged    bool   `json:"lodged"`
	StayCount int    `json:"stayCount"`
}
