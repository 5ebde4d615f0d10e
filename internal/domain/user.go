package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/userhub/backend/internal/model"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/errorx"
	"github.com/userhub/backend/pkg/pubsub"
	"github.com/userhub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	Create(context.Context, *model.CreateUserRequest) (*model.CreateUserResponse, error)
	GetByID(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetByEmail(context.Context, *model.GetUserByEmailRequest) (*model.GetUserByEmailResponse, error)
	GetList(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	Patch(context.Context, *model.PatchUserRequest) (*model.PatchUserResponse, error)
	Delete(context.Context, *model.DeleteUserRequest) (*model.DeleteUserResponse, error)
}

type userDomain struct {
	userRepo  repository.UserRepository
	publisher pubsub.Publisher
}

func NewUserDomain(
	userRepo repository.UserRepository,
	publisher pubsub.Publisher,
) UserDomain {
	return &userDomain{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (d *userDomain) Create(
	ctx context.Context, req *model.CreateUserRequest,
) (*model.CreateUserResponse, error) {
	xcontext.Logger(ctx).Infof("Creating user with email %s", req.Email)

	user := model.ToUserEntity(req)
	if err := d.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			xcontext.Logger(ctx).Warnf("Refused to create user, email %s is already taken", req.Email)
			return nil, errorx.New(errorx.AlreadyExists,
				"User with email already exists: %s", req.Email)
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	d.publishEvent(ctx, model.UserEventCreate, user.Email)

	return &model.CreateUserResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) GetByID(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found with id: %d", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by id: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) GetByEmail(
	ctx context.Context, req *model.GetUserByEmailRequest,
) (*model.GetUserByEmailResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found with email: %s", req.Email)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserByEmailResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) GetList(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	users, err := d.userRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUsersResponse{}
	for i := range users {
		resp = append(resp, model.ConvertUser(&users[i]))
	}

	return &resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found with id: %d", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by id: %v", err)
		return nil, errorx.Unknown
	}

	// Keeping the same email must never count as a collision with oneself.
	if user.Email != req.Email {
		existed, err := d.userRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check email existence: %v", err)
			return nil, errorx.Unknown
		}

		if existed {
			return nil, errorx.New(errorx.AlreadyExists,
				"User with email already exists: %s", req.Email)
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	if req.Age != nil {
		user.Age = *req.Age
	}

	if err := d.userRepo.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists,
				"User with email already exists: %s", req.Email)
		}

		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) Patch(
	ctx context.Context, req *model.PatchUserRequest,
) (*model.PatchUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found with id: %d", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by id: %v", err)
		return nil, errorx.Unknown
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}

	if req.Age != nil {
		user.Age = *req.Age
	}

	if err := d.userRepo.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists,
				"User with email already exists: %s", user.Email)
		}

		xcontext.Logger(ctx).Errorf("Cannot patch user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.PatchUserResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) Delete(
	ctx context.Context, req *model.DeleteUserRequest,
) (*model.DeleteUserResponse, error) {
	// The email must be captured before the row disappears, the delete event
	// carries it.
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found with id: %d", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by id: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete user: %v", err)
		return nil, errorx.Unknown
	}

	d.publishEvent(ctx, model.UserEventDelete, user.Email)

	return &model.DeleteUserResponse{}, nil
}

// publishEvent emits a lifecycle notification after a successful store
// mutation. The record is already committed at this point, so a broker
// failure is logged and the request still succeeds.
func (d *userDomain) publishEvent(ctx context.Context, operation, email string) {
	msg, err := json.Marshal(model.UserEvent{Operation: operation, Email: email})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal %s event of %s: %v", operation, email, err)
		return
	}

	topic := xcontext.Configs(ctx).Kafka.UserEventTopic
	pack := &pubsub.Pack{Key: []byte(email), Msg: msg}
	if err := d.publisher.Publish(ctx, topic, pack); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot publish %s event of %s: %v", operation, email, err)
	}
}
