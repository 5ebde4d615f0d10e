package testutil

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/internal/repository"
)

// SampleUser creates a user with a randomized email. Non-zero fields of init
// overwrite the sample before it is persisted.
//
// This function returns the persisted sample.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Name:  "Ivan",
		Email: fmt.Sprintf("%s@example.com", uuid.NewString()),
		Age:   25,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
