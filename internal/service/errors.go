package service

import "errors"

// Ошибки уровня сервиса аутентификации. Хендлеры маппят их на HTTP-статусы.
var (
	// ErrValidation — общий родитель для клиентских ошибок ввода (HTTP 400).
	ErrValidation = errors.New("validation failed")

	ErrFieldsRequired   = errors.New("please fill in all fields")
	ErrCredsRequired    = errors.New("please enter email and password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrEmailTaken — конфликт уникальности email (HTTP 400 по контракту API).
	ErrEmailTaken = errors.New("email already registered")

	// Ошибки входа (обе — HTTP 401).
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// IsValidation сообщает, является ли ошибка клиентской ошибкой ввода.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
