package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/userhub/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		var err error
		switch method {
		case http.MethodGet, http.MethodDelete:
			err = c.ShouldBindQuery(&req)
		default:
			err = c.ShouldBindJSON(&req)
		}

		// Bind the path parameters last. The body bind above already ran the
		// validator over the whole struct, so uri-only fields must not carry
		// binding tags.
		if err == nil && len(c.Params) > 0 {
			err = c.ShouldBindUri(&req)
		}

		if err != nil {
			writeBindError(c, err)
			return
		}

		ctx := c.Request.Context()
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		if id := c.GetHeader(RequestIDHeader); id != "" {
			ctx = xcontext.WithRequestID(ctx, id)
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(c, err)
			return
		}

		switch method {
		case http.MethodPost:
			c.JSON(http.StatusCreated, resp)
		case http.MethodDelete:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, resp)
		}
	}
}
