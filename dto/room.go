package dto

type CreateRoomRequest struct {
	Description string `json:"description" binding:"required"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Capacity    int    `json:"capacity"`
	DoubleBeds  int    `json:"doubleBeds"`
	SingleBeds  int    `json:"singleBeds"`
	BunkBeds    int    `json:"bunkBeds"`
	Hammocks    int    `json:"hammocks"`
	Status      int    `json:"status"`
}

type UpdateRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomBoardItem một phòng trên bảng lễ tân
type RoomBoardItem struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	DoubleBeds  int    `json:"doubleBeds"`
	SingleBeds  int    `json:"singleBeds"`
	BunkBeds    int    `json:"bunkBeds"`
	Hammocks    int    `json:"hammocks"`
	Status      int    `json:"status"`
	StayID      *uint  `json:"stayId,omitempty"`
	HolderName  string `json:"holderName,omitempty"`
	HolderCPF   string `json:"holderCpf,omitempty"`
}

// RoomBoardGroup các phòng được gom theo loại
type RoomBoardGroup struct {
	CategoryID   uint            `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Rooms        []RoomBoardItem `json:"rooms"`
}

// BoardFilters bộ lọc bảng phòng, được nhớ theo phiên lễ tân
type BoardFilters struct {
	Date   string `json:"date" form:"date"`
	Status *int   `json:"status" form:"status"`
	Search string `json:"search" form:"search"`
}

type RoomStatusItem struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}
