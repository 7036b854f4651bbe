package engine

import (
	"sync"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroggy_backend/internal/model"
)

func shape(o model.Outcome) string {
	switch {
	case o[0] == o[1] && o[1] == o[2]:
		return "triple"
	case o[0] == o[1] || o[1] == o[2]:
		return "pair"
	default:
		return "other"
	}
}

func TestGenerateOutcome_Deterministic(t *testing.T) {
	a := newTestEngine(t, 42)
	b := newTestEngine(t, 42)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.GenerateOutcome(), b.GenerateOutcome(), "spin %d", i)
	}
}

func TestGenerateOutcome_BandDistribution(t *testing.T) {
	e := newTestEngine(t, 7)
	const rounds = 100_000

	counts := map[string]int{}
	for i := 0; i < rounds; i++ {
		counts[shape(e.GenerateOutcome())]++
	}

	// Полоса трех одинаковых - 0.15 плюс редкие случайные триплеты
	// из свободной полосы
	triples := float64(counts["triple"]) / rounds
	assert.InDelta(t, 0.15, triples, 0.03)

	// Полоса принудительной пары - 0.40 плюс случайные пары из свободной
	pairs := float64(counts["pair"]) / rounds
	assert.Greater(t, pairs, 0.40)
	assert.Less(t, pairs, 0.55)
}

func TestGenerateOutcome_ForcedPairHasDistinctThird(t *testing.T) {
	// Полосу пары не отличить от случайной по одному исходу, поэтому
	// проверяем инварианты самой выборки с исключением
	e := newTestEngine(t, 3)

	for i := 0; i < 10_000; i++ {
		pair := e.drawWeighted()
		third := e.drawWeightedExcept(pair)
		require.NotEqual(t, pair, third)
	}
}

func TestDrawWeighted_HonorsWeights(t *testing.T) {
	e := newTestEngine(t, 11)
	tables := e.Tables()
	const rounds = 200_000

	counts := map[model.Symbol]int{}
	for i := 0; i < rounds; i++ {
		counts[e.drawWeighted()]++
	}

	total := float64(tables.TotalWeight())
	for _, sw := range tables.Symbols {
		expected := float64(sw.Weight) / total
		got := float64(counts[sw.Symbol]) / rounds
		assert.InDelta(t, expected, got, 0.01, "symbol %s", sw.Symbol)
	}

	// Самый редкий символ действительно выпадает реже самого частого
	assert.Less(t, counts[SymbolMoney], counts[SymbolCigar])
}

func TestGenerateOutcome_ConcurrentUse(t *testing.T) {
	// Один Engine с NewRand разделяется между горутинами, как в рантайме
	// между хендлерами. Под -race тест ловит гонки на источнике случайности
	e := New(DefaultTables(), NewRand(19), quartz.NewMock(t))

	known := map[model.Symbol]bool{}
	for _, sw := range e.Tables().Symbols {
		known[sw.Symbol] = true
	}

	const (
		workers = 4
		rounds  = 10_000
	)

	var wg sync.WaitGroup
	errs := make(chan model.Symbol, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				for _, s := range e.GenerateOutcome() {
					if !known[s] {
						errs <- s
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for s := range errs {
		t.Fatalf("unknown symbol %q", s)
	}
}

func TestGenerateOutcome_AlphabetOnly(t *testing.T) {
	e := newTestEngine(t, 5)
	known := map[model.Symbol]bool{}
	for _, sw := range e.Tables().Symbols {
		known[sw.Symbol] = true
	}

	for i := 0; i < 5000; i++ {
		out := e.GenerateOutcome()
		for _, s := range out {
			require.True(t, known[s], "unknown symbol %q", s)
		}
	}
}
