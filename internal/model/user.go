package model

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	CreatedAt string `json:"createdAt"`
}

// Age is a pointer so that the required rule rejects a missing field while
// still accepting a legitimate zero.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
	Age   *int   `json:"age" binding:"required,gte=0,lte=150"`
}

type CreateUserResponse struct {
	User
}

type GetUserRequest struct {
	ID int64 `uri:"id" json:"-"`
}

type GetUserResponse struct {
	User
}

type GetUserByEmailRequest struct {
	Email string `form:"email" binding:"required,email"`
}

type GetUserByEmailResponse struct {
	User
}

type GetUsersRequest struct{}

type GetUsersResponse []User

type UpdateUserRequest struct {
	ID    int64  `uri:"id" json:"-"`
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
	Age   *int   `json:"age" binding:"required,gte=0,lte=150"`
}

type UpdateUserResponse struct {
	User
}

// PatchUserRequest applies only its non-nil fields.
type PatchUserRequest struct {
	ID    int64   `uri:"id" json:"-"`
	Name  *string `json:"name" binding:"omitempty,notblank"`
	Email *string `json:"email" binding:"omitempty,email"`
	Age   *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
}

type PatchUserResponse struct {
	User
}

type DeleteUserRequest struct {
	ID int64 `uri:"id" json:"-"`
}

type DeleteUserResponse struct{}
