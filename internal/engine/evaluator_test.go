package engine

import (
	"math/rand"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroggy_backend/internal/model"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	return New(DefaultTables(), rand.New(rand.NewSource(seed)), quartz.NewMock(t))
}

func TestEvaluate_TripleMoney(t *testing.T) {
	e := newTestEngine(t, 1)

	res := e.Evaluate(model.Outcome{SymbolMoney, SymbolMoney, SymbolMoney}, 10)

	assert.True(t, res.Won)
	assert.Equal(t, 500, res.Payout)
	assert.Equal(t, "Money Bags!", res.Label)
}

func TestEvaluate_AllDistinctNoPair(t *testing.T) {
	e := newTestEngine(t, 1)

	// Три разных символа, позиции 0 и 2 тоже не совпадают
	res := e.Evaluate(model.Outcome{SymbolTaco, SymbolCheese, SymbolCigar}, 5)

	assert.False(t, res.Won)
	assert.Equal(t, 0, res.Payout)
	assert.Empty(t, res.Label)
}

func TestEvaluate_PairPlacement(t *testing.T) {
	e := newTestEngine(t, 1)

	tests := []struct {
		name    string
		outcome model.Outcome
		won     bool
		payout  int
		label   string
	}{
		{
			name:    "премиальная пара спереди",
			outcome: model.Outcome{SymbolMoney, SymbolMoney, SymbolCigar},
			won:     true,
			payout:  4 * 5,
			label:   "Double Money",
		},
		{
			name:    "премиальная пара сзади",
			outcome: model.Outcome{SymbolCigar, SymbolSkull, SymbolSkull},
			won:     true,
			payout:  4 * 3,
			label:   "Double Skull",
		},
		{
			name:    "непремиальная пара не платит",
			outcome: model.Outcome{SymbolCheese, SymbolCheese, SymbolCigar},
			won:     false,
			payout:  0,
		},
		{
			name:    "зеркало по краям",
			outcome: model.Outcome{SymbolCat, SymbolCigar, SymbolCat},
			won:     true,
			payout:  4 * 2,
			label:   "Mirror Match",
		},
		{
			name:    "непремиальная пара сзади с зеркалом не совпадает",
			outcome: model.Outcome{SymbolCigar, SymbolCheese, SymbolCheese},
			won:     false,
			payout:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Evaluate(tt.outcome, 4)
			assert.Equal(t, tt.won, res.Won)
			assert.Equal(t, tt.payout, res.Payout)
			assert.Equal(t, tt.label, res.Label)
		})
	}
}

// TestEvaluate_Exhaustive перебирает все 12^3 = 1728 исходов и проверяет,
// что каждому соответствует ровно одно правило с ожидаемой выплатой
func TestEvaluate_Exhaustive(t *testing.T) {
	tables := DefaultTables()
	e := newTestEngine(t, 1)
	const bet = 7

	require.Len(t, tables.Symbols, 12)

	seen := 0
	for _, a := range tables.Symbols {
		for _, b := range tables.Symbols {
			for _, c := range tables.Symbols {
				outcome := model.Outcome{a.Symbol, b.Symbol, c.Symbol}
				res := e.Evaluate(outcome, bet)
				seen++

				// Независимый оракул с тем же порядком приоритетов
				switch {
				case a.Symbol == b.Symbol && b.Symbol == c.Symbol:
					rule := tables.Triples[a.Symbol]
					require.True(t, res.Won, "triple %v", outcome)
					require.Equal(t, bet*rule.Multiplier, res.Payout)
					require.Equal(t, rule.Label, res.Label)
				case a.Symbol == b.Symbol:
					if rule, ok := tables.Pairs[a.Symbol]; ok {
						require.True(t, res.Won, "front pair %v", outcome)
						require.Equal(t, bet*rule.Multiplier, res.Payout)
						require.Equal(t, rule.Label, res.Label)
					} else {
						require.False(t, res.Won, "front pair without rule %v", outcome)
						require.Zero(t, res.Payout)
					}
				case b.Symbol == c.Symbol:
					if rule, ok := tables.Pairs[b.Symbol]; ok {
						require.True(t, res.Won, "back pair %v", outcome)
						require.Equal(t, bet*rule.Multiplier, res.Payout)
						require.Equal(t, rule.Label, res.Label)
					} else {
						require.False(t, res.Won, "back pair without rule %v", outcome)
						require.Zero(t, res.Payout)
					}
				case a.Symbol == c.Symbol:
					require.True(t, res.Won, "mirror %v", outcome)
					require.Equal(t, bet*tables.MirrorMultiplier, res.Payout)
					require.Equal(t, tables.MirrorLabel, res.Label)
				default:
					require.False(t, res.Won, "lose %v", outcome)
					require.Zero(t, res.Payout)
					require.Empty(t, res.Label)
				}

				// Повторный вызов дает тот же результат: оценка чистая
				require.Equal(t, res, e.Evaluate(outcome, bet))
			}
		}
	}
	require.Equal(t, 1728, seen)
}
