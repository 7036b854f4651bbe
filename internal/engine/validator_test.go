package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroggy_backend/internal/model"
)

func TestValidateBet(t *testing.T) {
	e := newTestEngine(t, 1)

	tests := []struct {
		name    string
		bet     int
		balance int
		reason  string
	}{
		{"ставка в границах", 5, 10, ""},
		{"нижняя граница включительно", 1, 10, ""},
		{"верхняя граница включительно", 10, 10, ""},
		{"ставка равна балансу", 3, 3, ""},
		{"ниже минимума", 0, 10, "below minimum"},
		{"отрицательная ставка", -4, 10, "below minimum"},
		{"выше максимума", 11, 100, "above maximum"},
		{"не хватает баланса", 5, 3, "insufficient balance"},
		{"нулевой баланс", 1, 0, "insufficient balance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.ValidateBet(tt.bet, tt.balance)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

// Валидация - чистая функция: повторный вызов с теми же аргументами
// дает тот же результат
func TestValidateBet_Idempotent(t *testing.T) {
	e := newTestEngine(t, 1)

	first := e.ValidateBet(5, 3)
	second := e.ValidateBet(5, 3)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}
