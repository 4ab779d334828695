package models

import "errors"

// Доменные ошибки. Слои оборачивают их через fmt.Errorf("...: %w"), проверка - errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// ErrTokenInvalid - токен поврежден, просрочен или не прошел проверку подписи
	ErrTokenInvalid = errors.New("token invalid")
	// ErrUser - токен валиден, но пользователя получить не удалось
	ErrUser = errors.New("user resolution failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")

	ErrMissingUserReference = errors.New("sos request has no associated user")
	ErrInvalidTransition    = errors.New("invalid sos status transition")
	ErrInvalidZone          = errors.New("invalid disaster zone")
	ErrInvalidLocation      = errors.New("invalid location")
)
