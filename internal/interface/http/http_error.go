package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

// HTTPError is the transport view of a failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type errorMapping struct {
	status int
	code   string
}

// domainErrors maps AppError codes to response status and public code.
var domainErrors = map[string]errorMapping{
	apperrors.CodeInvalidInput:         {status: http.StatusBadRequest, code: "invalid_request"},
	apperrors.CodeNotFound:             {status: http.StatusNotFound, code: "not_found"},
	apperrors.CodeStorage:              {status: http.StatusBadGateway, code: "storage_error"},
	summarizer.CodeSummarizationFailed: {status: http.StatusInternalServerError, code: summarizer.CodeSummarizationFailed},
}

// asHTTPError resolves explicit HTTPErrors first, then summarizer AppErrors,
// and treats anything else as an internal error.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if mapping, ok := domainErrors[apperrors.CodeOf(err)]; ok {
		return &HTTPError{
			Status:  mapping.status,
			Code:    mapping.code,
			Message: apperrors.MessageOf(err),
			Err:     err,
		}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

// abortWithError records err for errorHandlingMiddleware and stops the chain.
func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
