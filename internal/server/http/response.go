package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// answer is the response envelope every endpoint returns.
type answer struct {
	Status string      `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(code, answer{Status: statusSuccess, Msg: msg, Data: data})
}

func respondInvalid(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, answer{Status: statusFail, Msg: msg})
}

// respondErr maps sentinel errors to status codes in one place.
func (s *Server) respondErr(c *gin.Context, err error) {
	var code int
	status := statusFail
	switch {
	case errors.Is(err, errs.ErrInvalidID):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrCategoryNotFound),
		errors.Is(err, errs.ErrItemNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrNotModified):
		code = http.StatusNotModified
	case errors.Is(err, errs.ErrAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
		status = statusError
		s.log.WithError(err).Error("store unavailable")
	default:
		code = http.StatusInternalServerError
		status = statusError
		s.log.WithError(err).Error("unhandled error")
	}
	c.JSON(code, answer{Status: status, Msg: err.Error()})
}
