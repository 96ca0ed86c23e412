package models

import "time"

// Entry is the step-1 record (name + email) that a room booking hangs off.
type Entry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	TextValue string    `gorm:"column:textValue;type:varchar(255);not null" json:"textValue"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

func (Entry) TableName() string {
	return "Entries"
}
