package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Room admin status. 0 nghĩa là chưa gán, trạng thái sẽ được suy ra từ pernoite.
const (
	RoomStatusUnset       = 0
	RoomStatusOccupied    = 1
	RoomStatusAvailable   = 2
	RoomStatusReserved    = 3
	RoomStatusCleaning    = 4
	RoomStatusNightClosed = 5
	RoomStatusMaintenance = 6
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)
