package repository

import (
	"context"

	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, data *entity.User) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetAll returns users in store-native order, no sorting is applied.
func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	var records []entity.User
	if err := xcontext.DB(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Update replaces the mutable columns only. ID and created_at never change
// after the first save.
func (r *userRepository) Update(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", data.ID).Updates(map[string]any{
		"name":  data.Name,
		"email": data.Email,
		"age":   data.Age,
	}).Error
}

func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.User{}).Error
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Where("email=?", email).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
