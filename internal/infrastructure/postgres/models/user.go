package models

import "time"

type UserModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Phone     string `gorm:"uniqueIndex;not null"`
	PinHash   string `gorm:"not null"`
	Role      string `gorm:"not null;default:user"`
	CreatedAt time.Time
}
