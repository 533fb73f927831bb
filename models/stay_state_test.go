package models

import "testing"

func TestActiveStateTransitions(t *testing.T) {
	stay := &Stay{Status: StayStatusActive, Active: true}
	state := GetStayState(stay.Status)

	if err := state.CloseNight(stay); err != nil {
		t.Fatalf("CloseNight: %v", err)
	}
	if stay.Status != StayStatusNightClosed {
		t.Errorf("status = %d, muốn %d", stay.Status, StayStatusNightClosed)
	}
}

func TestCancelFromActiveDeactivates(t *testing.T) {
	stay := &Stay{Status: StayStatusActive, Active: true}
	state := GetStayState(stay.Status)

	if err := state.Cancel(stay); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if stay.Active {
		t.Error("pernoite hủy vẫn còn active")
	}
	if stay.Status != StayStatusCancelled {
		t.Errorf("status = %d, muốn %d", stay.Status, StayStatusCancelled)
	}
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	for _, status := range []int{StayStatusFinished, StayStatusCancelled} {
		stay := &Stay{Status: status}
		state := GetStayState(status)

		if err := state.CloseNight(stay); err == nil {
			t.Errorf("status %d: CloseNight phải bị từ chối", status)
		}
		if err := state.Cancel(stay); err == nil {
			t.Errorf("status %d: Cancel phải bị từ chối", status)
		}
	}
}

func TestPendingPaymentCanFinish(t *testing.T) {
	stay := &Stay{Status: StayStatusFinishedPendingPayment}
	state := GetStayState(stay.Status)

	if err := state.Finish(stay); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if stay.Status != StayStatusFinished {
		t.Errorf("status = %d, muốn %d", stay.Status, StayStatusFinished)
	}

	if err := GetStayState(stay.Status).Cancel(stay); err == nil {
		t.Error("Cancel sau khi kết thúc phải bị từ chối")
	}
}

func TestNightClosedCanCancel(t *testing.T) {
	stay := &Stay{Status: StayStatusNightClosed, Active: true}
	state := GetStayState(stay.Status)

	if err := state.Cancel(stay); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if stay.Active || stay.Status != StayStatusCancelled {
		t.Errorf("stay = %+v, muốn đã hủy", stay)
	}
}
