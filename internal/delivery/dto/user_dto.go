package dto

import "time"

type UserResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	PhoneNumber   *string    `json:"phoneNumber"`
	PregnancyWeek *int       `json:"pregnancyWeek"`
	DueDate       *time.Time `json:"dueDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}
