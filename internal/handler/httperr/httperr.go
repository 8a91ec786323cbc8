package httperr

import (
	"net/http"

	"delivery-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the request ID under.
const RequestIDKey = "request_id"

type Body struct {
	Message string `json:"message"`
}

type Response struct {
	Status    int    `json:"-"`
	Error     Body   `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     Body{Message: msg},
		RequestID: c.GetString(RequestIDKey),
		Detail:    detail,
	}
}

// AbortWithError writes the JSON error body and keeps err on the gin context so the
// error middleware can log the cause behind a generic message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)

	errType := gin.ErrorTypePublic
	if status >= http.StatusInternalServerError {
		errType = gin.ErrorTypePrivate
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: errType,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Rule maps errors matching Target to a status. An empty Message falls back to
// Target's own text.
type Rule struct {
	Target  error
	Status  int
	Message string
}

// AbortWithRules answers with the first rule whose target err matches, or with a plain
// 500 when none does.
func AbortWithRules(c *gin.Context, err error, rules []Rule) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			msg := r.Message
			if msg == "" {
				msg = r.Target.Error()
			}
			AbortWithError(c, r.Status, err, msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
