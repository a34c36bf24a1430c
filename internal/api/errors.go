package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/haengsi/internal/domain"
	"github.com/phrazzld/haengsi/internal/generation"
)

// User-visible messages. Raw error text is never shown to the user.
const (
	MsgEmptyWord      = "단어를 입력해주세요."
	MsgNotKorean      = "한국어 단어를 입력해주세요."
	MsgReservedChar   = "대괄호([ ])는 사용할 수 없습니다."
	MsgWordTooLong    = "10자 이하의 단어를 입력해주세요."
	MsgWordTooShort   = "2자 이상의 단어를 입력해주세요."
	MsgAuthentication = "API 키가 설정되지 않았거나 올바르지 않습니다. 관리자에게 문의해주세요."
	MsgService        = "행시 생성 중 API 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgUnexpected     = "예상하지 못한 오류가 발생했습니다."
	MsgInvalidRequest = "요청 형식이 올바르지 않습니다."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case generation.IsAuthenticationError(err):
		return http.StatusServiceUnavailable
	case generation.IsServiceError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the Korean message shown to the user for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpected
	case errors.Is(err, domain.ErrEmptyWord):
		return MsgEmptyWord
	case errors.Is(err, domain.ErrNotKorean):
		return MsgNotKorean
	case errors.Is(err, domain.ErrInvalidCharacter):
		return MsgReservedChar
	case errors.Is(err, domain.ErrWordTooLong):
		return MsgWordTooLong
	case errors.Is(err, domain.ErrWordTooShort):
		return MsgWordTooShort
	case generation.IsAuthenticationError(err):
		return MsgAuthentication
	case generation.IsServiceError(err):
		return MsgService
	default:
		return MsgUnexpected
	}
}

// GetRequestValidationMessage returns the message for a request body that
// failed struct validation.
func GetRequestValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return MsgInvalidRequest
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Word" && fe.Tag() == "max" {
			return MsgWordTooLong
		}
	}
	return MsgInvalidRequest
}
