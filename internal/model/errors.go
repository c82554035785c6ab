package model

import "errors"

// Сигнальные ошибки доменного слоя. Вызывающий различает их через errors.Is:
// not-found и invalid-transition — разные ситуации.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLoggedOut         = errors.New("no active session")
	ErrRoleImmutable     = errors.New("role cannot be changed")
	ErrSessionCorrupted  = errors.New("persisted session is corrupted")
)
