package model

import (
	"time"

	"github.com/userhub/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

// ConvertUser projects a persisted user onto its response shape. No checks, no
// side effects.
func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}
}

// ToUserEntity builds a fresh entity from a create request. ID and CreatedAt
// stay zero, the store assigns both on insert.
func ToUserEntity(req *CreateUserRequest) *entity.User {
	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Age != nil {
		user.Age = *req.Age
	}

	return user
}
