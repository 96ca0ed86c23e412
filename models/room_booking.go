package models

import "time"

type RoomBooking struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	EntryID    uint      `gorm:"column:entryId;index;not null" json:"entryId"`
	RoomNumber string    `gorm:"column:roomNumber;type:varchar(50);not null" json:"roomNumber"`
	NumGuests  int       `gorm:"column:numGuests;not null" json:"numGuests"`
	CreatedAt  time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`

	// FK only; never preloaded or serialized.
	Entry *Entry `gorm:"foreignKey:EntryID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (RoomBooking) TableName() string {
	return "RoomBookings"
}
