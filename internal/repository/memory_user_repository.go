package repository

import (
	"context"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"
)

type memoryUserRepository struct {
	users *memoryTable[entity.User]
	now   func() time.Time
}

func NewMemoryUserRepository() domainRepo.UserRepository {
	return &memoryUserRepository{
		users: newMemoryTable(cloneUser),
		now:   time.Now,
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	prepareUser(user, r.now())
	return r.users.insert(user.ID, *user, func(existing entity.User) bool {
		return existing.Username == user.Username || existing.Email == user.Email
	})
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok := r.users.find(func(u entity.User) bool { return u.Username == username })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func cloneUser(u entity.User) entity.User {
	if u.PhoneNumber != nil {
		phone := *u.PhoneNumber
		u.PhoneNumber = &phone
	}
	if u.PregnancyWeek != nil {
		week := *u.PregnancyWeek
		u.PregnancyWeek = &week
	}
	if u.DueDate != nil {
		due := *u.DueDate
		u.DueDate = &due
	}
	return u
}
