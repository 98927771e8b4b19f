package utils

import (
	"errors"
	"net/http"

	apperrors "fleet-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status     bool        `json:"status"`
	Body       interface{} `json:"body,omitempty"`
	Message    string      `json:"message"`
	TotalCount *uint64     `json:"total_count,omitempty"`
}

// errorStatusList maps the sentinel errors to HTTP status codes.
var errorStatusList = map[error]int{
	apperrors.ErrNotFound:            http.StatusNotFound,
	apperrors.ErrBadRequest:          http.StatusBadRequest,
	apperrors.ErrConflict:            http.StatusConflict,
	apperrors.ErrUnauthorized:        http.StatusUnauthorized,
	apperrors.ErrForbidden:           http.StatusForbidden,
	apperrors.ErrEmptyAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:   http.StatusUnauthorized,
	apperrors.ErrInvalidToken:        http.StatusUnauthorized,
	apperrors.ErrTokenExpired:        http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:    http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:   http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:    http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:  http.StatusUnauthorized,
	apperrors.ErrInvalidUserID:       http.StatusUnauthorized,
	apperrors.ErrInvalidTransition:   http.StatusUnprocessableEntity,
	apperrors.ErrMechanicNotFound:    http.StatusNotFound,
	apperrors.ErrOrderNotInQueue:     http.StatusUnprocessableEntity,
	apperrors.ErrInsufficientStock:   http.StatusUnprocessableEntity,
	apperrors.ErrVehicleInUse:        http.StatusConflict,
	apperrors.ErrPartInUse:           http.StatusConflict,
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, totalCount ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(totalCount) > 0 {
		response.TotalCount = &totalCount[0]
	}
	return ctx.JSON(code, response)
}

// ErrorResponse converts any error reaching a handler into exactly one
// user-visible notification, logging the internal cause.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := apperrors.ErrInternalServer.Error()

	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		if logger != nil {
			logger.Error("erro na requisição",
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "dados inválidos: " + validationErrs.Error()
	default:
		for sentinel, statusCode := range errorStatusList {
			if errors.Is(err, sentinel) {
				code = statusCode
				message = sentinel.Error()
				break
			}
		}
		if code == http.StatusInternalServerError && logger != nil {
			logger.Error("erro interno não mapeado", zap.Error(err))
		}
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
