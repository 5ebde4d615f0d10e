package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/userhub/backend/pkg/errorx"
)

// RequestIDHeader is propagated from the client or generated by the logging
// middleware, and echoed back on every response.
const RequestIDHeader = "X-Request-ID"

const (
	labelNotFound   = "NOT_FOUND"
	labelBadRequest = "BAD_REQUEST"
	labelInternal   = "INTERNAL_ERROR"
)

type errorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// writeBindError reports binding and validation failures. They never reach the
// domain layer.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error:    labelBadRequest,
			Messages: fieldMessages(verrs),
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error:   labelBadRequest,
		Message: "cannot bind the request: " + err.Error(),
	})
}

// writeError translates a domain error into the http status and label. Errors
// outside of the errorx set are reported generically.
func writeError(c *gin.Context, err error) {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	status, label := statusAndLabel(errx.Code)
	c.AbortWithStatusJSON(status, errorResponse{
		Error:   label,
		Message: errx.Message,
	})
}

func statusAndLabel(code errorx.Code) (int, string) {
	switch code {
	case errorx.NotFound:
		return http.StatusNotFound, labelNotFound
	case errorx.BadRequest, errorx.AlreadyExists:
		return http.StatusBadRequest, labelBadRequest
	case errorx.Unavailable:
		return http.StatusServiceUnavailable, labelInternal
	default:
		return http.StatusInternalServerError, labelInternal
	}
}
