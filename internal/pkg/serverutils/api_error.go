package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is an error carrying the HTTP status it should surface with.
// Anything else bubbling out of a handler becomes a 500.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}

func NewConflictError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusConflict, Message: message}
}
