package converter

import (
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password hash never leaves the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		PregnancyWeek: user.PregnancyWeek,
		DueDate:       user.DueDate,
		CreatedAt:     user.CreatedAt,
	}
}
