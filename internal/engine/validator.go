package engine

import "scroggy_backend/internal/model"

// ValidateBet проверяет ставку против границ и баланса.
// Проверки идут по порядку, возвращается первая ошибка.
// Все границы включительные: bet == MaxBet и bet == balance валидны
func (e *Engine) ValidateBet(bet, balance int) error {
	if bet < e.tables.MinBet {
		return model.NewValidationError("below minimum")
	}
	if bet > e.tables.MaxBet {
		return model.NewValidationError("above maximum")
	}
	if bet > balance {
		return model.NewValidationError("insufficient balance")
	}
	return nil
}
