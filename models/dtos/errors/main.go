package errors

import (
	"leopa/api/models/dtos"
	"net/http"
	"time"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

// -- Simplest: 1 error with message
func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadRequest, message)
}
func CreateSimpleNotFound(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusNotFound, message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusInternalServerError, message)
}
func CreateSimpleServiceUnavailable(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusServiceUnavailable, message)
}

// -- Several messages under one status
func CreateBadRequest(messages ...string) dtos.GeneralErrorResponseDto {
	dto := createSimple(http.StatusBadRequest, "")
	dto.Errors = make([]dtos.GeneralError, 0, len(messages))
	for _, m := range messages {
		dto.Errors = append(dto.Errors, dtos.GeneralError{Message: m})
	}
	return dto
}

func createSimple(code int, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   http.StatusText(code),
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

// --
