package entity

import (
	"time"
)

// User is the policy holder shown on the dashboard
type User struct {
	ID            string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Username      string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password      string     `gorm:"type:text;not null" json:"-"`
	FirstName     string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber   *string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	PregnancyWeek *int       `json:"pregnancy_week,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
