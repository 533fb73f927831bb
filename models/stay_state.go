package models

import "errors"

// StayState định nghĩa interface cho các trạng thái pernoite
type StayState interface {
	CloseNight(stay *Stay) error
	Finish(stay *Stay) error
	FinishPendingPayment(stay *Stay) error
	Cancel(stay *Stay) error
}

// ActiveState trạng thái đang lưu trú
type ActiveState struct{}

func (s *ActiveState) CloseNight(stay *Stay) error {
	stay.Status = StayStatusNightClosed
	return nil
}

func (s *ActiveState) Finish(stay *Stay) error {
	stay.Status = StayStatusFinished
	return nil
}

func (s *ActiveState) FinishPendingPayment(stay *Stay) error {
	stay.Status = StayStatusFinishedPendingPayment
	return nil
}

func (s *ActiveState) Cancel(stay *Stay) error {
	stay.Status = StayStatusCancelled
	stay.Active = false
	return nil
}

// NightClosedState trạng thái đã đóng đêm
type NightClosedState struct{}

func (s *NightClosedState) CloseNight(stay *Stay) error {
	return errors.New("stay night already closed")
}

func (s *NightClosedState) Finish(stay *Stay) error {
	stay.Status = StayStatusFinished
	return nil
}

func (s *NightClosedState) FinishPendingPayment(stay *Stay) error {
	stay.Status = StayStatusFinishedPendingPayment
	return nil
}

func (s *NightClosedState) Cancel(stay *Stay) error {
	stay.Status = StayStatusCancelled
	stay.Active = false
	return nil
}

// FinishedState trạng thái đã kết thúc
type FinishedState struct{}

func (s *FinishedState) CloseNight(stay *Stay) error {
	return errors.New("stay already finished")
}

func (s *FinishedState) Finish(stay *Stay) error {
	return errors.New("stay already finished")
}

func (s *FinishedState) FinishPendingPayment(stay *Stay) error {
	return errors.New("stay already finished")
}

func (s *FinishedState) Cancel(stay *Stay) error {
	return errors.New("cannot cancel finished stay")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) CloseNight(stay *Stay) error {
	return errors.New("stay already cancelled")
}

func (s *CancelledState) Finish(stay *Stay) error {
	return errors.New("cannot finish cancelled stay")
}

func (s *CancelledState) FinishPendingPayment(stay *Stay) error {
	return errors.New("cannot finish cancelled stay")
}

func (s *CancelledState) Cancel(stay *Stay) error {
	return errors.New("stay already cancelled")
}

// FinishedPendingPaymentState kết thúc nhưng còn nợ
type FinishedPendingPaymentState struct{}

func (s *FinishedPendingPaymentState) CloseNight(stay *Stay) error {
	return errors.New("stay already finished")
}

func (s *FinishedPendingPaymentState) Finish(stay *Stay) error {
	stay.Status = StayStatusFinished
	return nil
}

func (s *FinishedPendingPaymentState) FinishPendingPayment(stay *Stay) error {
	return errors.New("stay already pending payment")
}

func (s *FinishedPendingPaymentState) Cancel(stay *Stay) error {
	return errors.New("cannot cancel finished stay")
}

// GetStayState trả về state tương ứng với trạng thái pernoite
func GetStayState(status int) StayState {
	switch status {
	case StayStatusActive:
		return &ActiveState{}
	case StayStatusNightClosed:
		return &NightClosedState{}
	case StayStatusFinished:
		return &FinishedState{}
	case StayStatusCancelled:
		return &CancelledState{}
	case StayStatusFinishedPendingPayment:
		return &FinishedPendingPaymentState{}
	default:
		return &ActiveState{}
	}
}
