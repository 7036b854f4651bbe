package model

import "errors"

var (
	// ErrPlayerNotFound - игровой профиль не найден в хранилище
	ErrPlayerNotFound = errors.New("player not found")

	// ErrVersionConflict - запись отклонена: снапшот игрока устарел.
	// Вызывающий должен перечитать профиль и повторить расчёт целиком
	ErrVersionConflict = errors.New("player version conflict")
)

// ValidationError - ставка или сумма не прошли проверку.
// Состояние игрока при этом не меняется
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
