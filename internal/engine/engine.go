package engine

import (
	"math/rand"
	"sync"

	"github.com/coder/quartz"
)

// Engine - движок одного слота: генерация исхода, оценка выплат,
// валидация ставки и расчет раунда.
// Источник случайности и часы инжектируются для воспроизводимых тестов
type Engine struct {
	tables Tables
	rng    *rand.Rand
	clock  quartz.Clock
}

func New(tables Tables, rng *rand.Rand, clock quartz.Clock) *Engine {
	return &Engine{
		tables: tables,
		rng:    rng,
		clock:  clock,
	}
}

func (e *Engine) Tables() Tables {
	return e.tables
}

// lockedSource сериализует доступ к источнику случайности:
// один Engine обслуживает все конкурентные запросы, а rand.Source
// сам по себе не потокобезопасен
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand - *rand.Rand поверх источника с мьютексом.
// Именно такой rng должен инжектироваться в Engine, который будет
// разделяться между горутинами
func NewRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}
