package models

import "time"

// GuestRoom links a guest to one of their assigned rooms. Rows are kept after
// checkout so a reissued invoice can still name the rooms of the stay.
type GuestRoom struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	GuestID  uint `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID   uint `gorm:"index;column:room_id" json:"room_id"`
	Position int  `gorm:"column:position" json:"position"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
