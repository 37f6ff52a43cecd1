package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
	kind    string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

// Is matches errors of the same kind regardless of message
func (he *HTTPError) Is(target error) bool {
	var other *HTTPError
	if !errors.As(target, &other) {
		return false
	}
	if he.kind != "" || other.kind != "" {
		return he.kind == other.kind
	}
	return he.Status == other.Status && he.Message == other.Message
}

// Withf keeps the kind and status but replaces the message
func (he *HTTPError) Withf(format string, args ...interface{}) *HTTPError {
	return &HTTPError{
		Status:  he.Status,
		Message: fmt.Sprintf(format, args...),
		kind:    he.kind,
	}
}

func newKind(status int, kind string, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message, kind: kind}
}

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.AbortWithStatusJSON(err.Status, err)
}

type HandlerOpts struct {
	SuccessStatus int
}

type Handler func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper writes the handler's result as JSON. A nil result writes no body.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	status := http.StatusOK
	if opts != nil && opts.SuccessStatus != 0 {
		status = opts.SuccessStatus
	}
	return func(c *gin.Context) {
		data, err := handler(c)
		if err != nil {
			HandleHTTPErrorRes(c, err)
			return
		}
		if data == nil {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(status, data)
	}
}

func BuildDbHTTPErr(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	log.Error().Err(err).Msg("database error occurred")
	return DbHTTPErr
}

// BuildInternalHTTPErr hides err from the client and logs it
func BuildInternalHTTPErr(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	log.Error().Err(err).Msg("internal error occurred")
	return InternalHTTPErr
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return MalformedJSONHTTPErr.Withf("malformed request body: %v", err)
}

func ParseId(val string) (string, *HTTPError) {
	id, err := uuid.Parse(val)
	if err != nil {
		return "", MalformedIdHTTPErr
	}
	return id.String(), nil
}

func NewId() string {
	return uuid.NewString()
}
