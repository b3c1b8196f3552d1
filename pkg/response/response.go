package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"donation-report-srv/pkg/discord"
	"donation-report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response. Known HTTP errors keep their code and
// message; anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   validationErr.Error(),
			Errors:    []*errors.ValidationError{validationErr},
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// ErrorWithMap resolves err through mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError writes a 500 for a recovered panic and reports the stack.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic on %s %s: %v\n%s",
		c.Request.Method, c.Request.URL.Path, rec, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	_ = d.ReportBug(ctx, msg)
}
