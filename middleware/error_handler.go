package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/utils"
)

// ErrorHandler is the single place errors become HTTP responses.
// Controllers attach errors via ctx.Error and return; this middleware maps
// the typed kinds onto status codes and logs internal failures with their
// wrapped cause, which never reaches the response body.
func ErrorHandler(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}

		err := apperr.From(ctx.Errors.Last().Err)
		if err.Kind == apperr.KindInternal {
			log.Errorw("request failed",
				"path", ctx.Request.URL.Path,
				"method", ctx.Request.Method,
				"error", err.Unwrap(),
			)
		}
		utils.Error(ctx, err.Status(), err.Code, err.Message, err.Fields...)
	}
}
