package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/testutil"
	"github.com/userhub/backend/pkg/xcontext"
)

func Test_userRepository_ReadWrite(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	user := &entity.User{Name: "user1", Email: "user1@example.com", Age: 20}
	require.NoError(t, userRepo.Create(ctx, user))
	require.Greater(t, user.ID, int64(0))
	require.False(t, user.CreatedAt.IsZero())

	byID, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "user1", byID.Name)

	byEmail, err := userRepo.GetByEmail(ctx, "user1@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	all, err := userRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func Test_userRepository_Exists(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	user := &entity.User{Name: "user1", Email: "user1@example.com", Age: 20}
	require.NoError(t, userRepo.Create(ctx, user))

	existed, err := userRepo.ExistsByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = userRepo.ExistsByID(ctx, user.ID+1)
	require.NoError(t, err)
	require.False(t, existed)

	existed, err = userRepo.ExistsByEmail(ctx, "user1@example.com")
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = userRepo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.False(t, existed)
}

func Test_userRepository_Update(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	user := &entity.User{Name: "user1", Email: "user1@example.com", Age: 20}
	require.NoError(t, userRepo.Create(ctx, user))
	createdAt := user.CreatedAt

	user.Name = "renamed"
	user.Age = 21
	require.NoError(t, userRepo.Update(ctx, user))

	record, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", record.Name)
	require.Equal(t, 21, record.Age)
	require.Equal(t, createdAt.Unix(), record.CreatedAt.Unix())
}

func Test_userRepository_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	user := &entity.User{Name: "user1", Email: "user1@example.com", Age: 20}
	require.NoError(t, userRepo.Create(ctx, user))
	require.NoError(t, userRepo.DeleteByID(ctx, user.ID))

	all, err := userRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func Test_userRepository_uniqueEmail(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		Name: "user1", Email: "same@example.com", Age: 20,
	}))

	err := userRepo.Create(ctx, &entity.User{
		Name: "user2", Email: "same@example.com", Age: 30,
	})
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))
	require.False(t, repository.IsUniqueViolation(nil))
}

func Test_IsUniqueViolation_otherConstraint(t *testing.T) {
	ctx := testutil.MockContext()

	// A NOT NULL breach is a constraint error too, but it is not a duplicate.
	err := xcontext.DB(ctx).Exec(
		"INSERT INTO users (name, email, age) VALUES (NULL, 'x@example.com', 20)",
	).Error
	require.Error(t, err)
	require.False(t, repository.IsUniqueViolation(err))
}
