package http

import (
	"errors"
	"net/http"

	"packing/internal/core/domain/model/packaging"
	"packing/internal/generated/servers"
	"packing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindInvalidInput:       http.StatusBadRequest,
	errs.KindPreconditionFailed: http.StatusUnprocessableEntity,
	errs.KindConflict:           http.StatusConflict,
	errs.KindTimeout:            http.StatusGatewayTimeout,
	errs.KindBackingStore:       http.StatusInternalServerError,
	errs.KindInternal:           http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status code.
func StatusOf(kind errs.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NewErrorBody renders err in the shape every failing endpoint returns.
func NewErrorBody(err error) servers.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		kind := errs.KindInternal
		switch httpErr.Code {
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			kind = errs.KindInvalidInput
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			kind = errs.KindNotFound
		}
		return servers.Error{
			Code:    httpErr.Code,
			Kind:    servers.ErrorKind(kind),
			Message: http.StatusText(httpErr.Code),
		}
	}

	kind := errs.KindOf(err)
	body := servers.Error{
		Code:    StatusOf(kind),
		Kind:    servers.ErrorKind(kind),
		Message: err.Error(),
	}
	if kind == errs.KindInternal || kind == errs.KindBackingStore {
		body.Message = internalErrorMessage
	}
	if reason := errs.CodeOf(err); reason != string(kind) {
		body.Reason = &reason
	}

	var active *packaging.SessionAlreadyActiveError
	if errors.As(err, &active) {
		body.SessionToken = &active.Token
	}
	return body
}

// ErrorHandler is the echo.HTTPErrorHandler of the packing API. Server-side
// failures are logged with their cause; client errors only at debug level.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := NewErrorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.String("kind", string(body.Kind)),
				zap.Error(err),
			)
		} else {
			logger.Debug("request rejected",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.String("kind", string(body.Kind)),
				zap.Error(err),
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(body.Code)
		} else {
			err = ctx.JSON(body.Code, body)
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}
