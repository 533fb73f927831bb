package validator

import (
	"regexp"
	"time"

	"pousada/dto"
	"pousada/errors"
	"pousada/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateCreateStay validate request tạo pernoite, trả về ngày đã parse
func ValidateCreateStay(req *dto.CreateStayRequest, now time.Time) (time.Time, time.Time, error) {
	if req.RoomID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkIn, err := time.Parse(dto.DateLayout, req.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(dto.DateLayout, req.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !checkIn.Equal(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng phải là ngày hôm nay", errors.ErrCheckInNotToday)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrCheckOutBeforeStart)
	}

	if err := ValidateStayGuests(req.Guests); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := ValidateStayPayments(req.Payments); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return checkIn, checkOut, nil
}

// ValidateStayGuests mỗi đêm chỉ được có một người đại diện
func ValidateStayGuests(guests []dto.StayGuestInput) error {
	representatives := 0
	seen := make(map[uint]bool)
	for _, g := range guests {
		if g.GuestID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách không được để trống", nil)
		}
		if seen[g.GuestID] {
			return errors.NewAppError(errors.ErrCodeValidation, "Khách bị trùng trong danh sách", nil)
		}
		seen[g.GuestID] = true
		if g.Representative {
			representatives++
		}
	}
	if representatives > 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mỗi đêm chỉ được có một người đại diện", errors.ErrDuplicateHolder)
	}
	return nil
}

// ValidateStayPayments số tiền thanh toán phải dương
func ValidateStayPayments(payments []dto.StayPaymentInput) error {
	for _, p := range payments {
		if p.Amount <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số tiền thanh toán phải lớn hơn 0", errors.ErrInvalidAmount)
		}
		if p.PaymentTypeID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Loại thanh toán không được để trống", nil)
		}
	}
	return nil
}

// ValidateGuest validate thông tin khách
func ValidateGuest(name, cpf, phone, email string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if !isValidCPF(cpf) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "CPF không hợp lệ", errors.ErrInvalidCPF)
	}

	if phone != "" && !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if email != "" && !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateCompany validate thông tin công ty
func ValidateCompany(name, cnpj string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên công ty không được để trống", nil)
	}

	if !isValidCNPJ(cnpj) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "CNPJ không hợp lệ", nil)
	}

	return nil
}

// ValidateReport validate lançamento báo cáo
func ValidateReport(req *dto.CreateReportRequest) (time.Time, error) {
	if req.Description == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả không được để trống", nil)
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ", err)
	}

	return date, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,11}$`)
	return phoneRegex.MatchString(phone)
}

// isValidCPF CPF 11 chữ số, không tính checksum
func isValidCPF(cpf string) bool {
	cpfRegex := regexp.MustCompile(`^[0-9]{11}$`)
	return cpfRegex.MatchString(cpf)
}

// isValidCNPJ CNPJ 14 chữ số
func isValidCNPJ(cnpj string) bool {
	cnpjRegex := regexp.MustCompile(`^[0-9]{14}$`)
	return cnpjRegex.MatchString(cnpj)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}
	return nil
}
