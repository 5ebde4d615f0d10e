package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/userhub/backend/internal/domain"
	"github.com/userhub/backend/internal/middleware"
	"github.com/userhub/backend/internal/model"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/logger"
	"github.com/userhub/backend/pkg/router"
	"github.com/userhub/backend/pkg/testutil"
	"github.com/userhub/backend/pkg/xcontext"
)

func newTestHandler(t *testing.T, publisher *testutil.MockPublisher) http.Handler {
	t.Helper()

	ctx := testutil.MockContext()
	userDomain := domain.NewUserDomain(repository.NewUserRepository(), publisher)

	r := router.New(xcontext.DB(ctx), xcontext.Configs(ctx), logger.NewNopLogger())
	r.Use(middleware.Logger(logger.NewNopLogger()))

	userRouter := r.Group("/users")
	router.POST(userRouter, "", userDomain.Create)
	router.GET(userRouter, "", userDomain.GetList)
	router.GET(userRouter, "/email", userDomain.GetByEmail)
	router.GET(userRouter, "/:id", userDomain.GetByID)
	router.PUT(userRouter, "/:id", userDomain.Update)
	router.PATCH(userRouter, "/:id", userDomain.Patch)
	router.DELETE(userRouter, "/:id", userDomain.Delete)

	return r.Handler()
}

func doJSON(handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, handler http.Handler, name, email string, age int) model.User {
	t.Helper()

	w := doJSON(handler, http.MethodPost, "/users", map[string]any{
		"name": name, "email": email, "age": age,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func Test_router_createAndGet(t *testing.T) {
	handler := newTestHandler(t, &testutil.MockPublisher{})

	created := createUser(t, handler, "Ivan", "ivan@example.com", 25)
	require.Greater(t, created.ID, int64(0))
	require.Equal(t, "ivan@example.com", created.Email)
	require.NotEmpty(t, created.CreatedAt)

	w := doJSON(handler, http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(handler, http.MethodGet, "/users/email?email=ivan@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(handler, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
}

func Test_router_validation(t *testing.T) {
	handler := newTestHandler(t, &testutil.MockPublisher{})

	type errorBody struct {
		Error    string   `json:"error"`
		Message  string   `json:"message"`
		Messages []string `json:"messages"`
	}

	tests := []struct {
		name         string
		body         map[string]any
		wantMessages []string
	}{
		{
			name:         "blank name",
			body:         map[string]any{"name": "   ", "email": "a@b.com", "age": 20},
			wantMessages: []string{"name must not be blank"},
		},
		{
			name:         "malformed email",
			body:         map[string]any{"name": "Ivan", "email": "not-an-email", "age": 20},
			wantMessages: []string{"email must be valid"},
		},
		{
			name:         "age above range",
			body:         map[string]any{"name": "Ivan", "email": "a@b.com", "age": 151},
			wantMessages: []string{"age must be <= 150"},
		},
		{
			name:         "missing age",
			body:         map[string]any{"name": "Ivan", "email": "a@b.com"},
			wantMessages: []string{"age is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(handler, http.MethodPost, "/users", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, "BAD_REQUEST", body.Error)
			require.Equal(t, tt.wantMessages, body.Messages)
		})
	}

	// No user reaches the store through a rejected request.
	w := doJSON(handler, http.MethodGet, "/users", nil)
	var users []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Empty(t, users)
}

func Test_router_errorMapping(t *testing.T) {
	handler := newTestHandler(t, &testutil.MockPublisher{})

	w := doJSON(handler, http.MethodGet, "/users/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "NOT_FOUND", body.Error)
	require.Equal(t, "User not found with id: 999", body.Message)

	createUser(t, handler, "Ivan", "taken@example.com", 25)
	w = doJSON(handler, http.MethodPost, "/users", map[string]any{
		"name": "Other", "email": "taken@example.com", "age": 30,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "BAD_REQUEST", body.Error)
}

func Test_router_updatePatchDelete(t *testing.T) {
	handler := newTestHandler(t, &testutil.MockPublisher{})
	created := createUser(t, handler, "Ivan", "ivan@example.com", 25)

	w := doJSON(handler, http.MethodPut, fmt.Sprintf("/users/%d", created.ID), map[string]any{
		"name": "Renamed", "email": "renamed@example.com", "age": 26,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Renamed", updated.Name)

	createdAt, err := time.Parse(model.DefaultTimeLayout, created.CreatedAt)
	require.NoError(t, err)
	updatedAt, err := time.Parse(model.DefaultTimeLayout, updated.CreatedAt)
	require.NoError(t, err)
	require.Equal(t, createdAt.Unix(), updatedAt.Unix())

	w = doJSON(handler, http.MethodPatch, fmt.Sprintf("/users/%d", created.ID), map[string]any{
		"age": 30,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var patched model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	require.Equal(t, "Renamed", patched.Name)
	require.Equal(t, 30, patched.Age)

	w = doJSON(handler, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())

	w = doJSON(handler, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
