package model

import "time"

// User is the persisted user record.
// ID and CreatedAt are assigned by the store on create and never change afterwards.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:50;not null"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;size:255;not null"`
	Age       int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"<-:create;not null;precision:3"`
}

// TableName pins the table name independently of GORM's naming strategy.
func (User) TableName() string {
	return "users"
}
