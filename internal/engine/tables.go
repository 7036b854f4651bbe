package engine

import "scroggy_backend/internal/model"

// Символы алфавита
const (
	SymbolMoney    model.Symbol = "money"
	SymbolPoop     model.Symbol = "poop"
	SymbolEggplant model.Symbol = "eggplant"
	SymbolPeach    model.Symbol = "peach"
	SymbolSkull    model.Symbol = "skull"
	SymbolClown    model.Symbol = "clown"
	SymbolRainbow  model.Symbol = "rainbow"
	SymbolCat      model.Symbol = "cat"
	SymbolTaco     model.Symbol = "taco"
	SymbolMushroom model.Symbol = "mushroom"
	SymbolCheese   model.Symbol = "cheese"
	SymbolCigar    model.Symbol = "cigar"
)

// SymbolWeight - символ и его целочисленный вес для взвешенной выборки.
// Порядок в таблице фиксирует порядок обхода при розыгрыше
type SymbolWeight struct {
	Symbol model.Symbol
	Weight int
}

// Rule - множитель выплаты и отображаемое имя комбинации
type Rule struct {
	Multiplier int
	Label      string
}

// Tables - вся игровая математика движка.
// Веса и множители статичны на все время жизни процесса
type Tables struct {
	// Алфавит с весами, порядок значим
	Symbols []SymbolWeight

	// Таблица выплат за три одинаковых символа
	Triples map[model.Symbol]Rule

	// Таблица выплат за пару (позиции 0,1 или 1,2).
	// Заполнена только для премиальных символов - это осознанная асимметрия
	Pairs map[model.Symbol]Rule

	// Зеркальное совпадение: позиции 0 и 2 равны, центр отличается
	MirrorMultiplier int
	MirrorLabel      string

	// Полосы генерации: P(три одинаковых), P(принудительная пара).
	// Остаток - свободная полоса
	TripleChance float64
	PairChance   float64

	// Вероятность повтора уже выпавшего символа в свободной полосе
	RepeatBias float64

	// Границы ставки, включительно
	MinBet int
	MaxBet int

	// Стартовый баланс нового игрока и баланс после рестарта
	InitialBalance int
}

// DefaultTables - каноническая математика игры.
// Используется в тестах и как значение по умолчанию вместо config.yaml
func DefaultTables() Tables {
	return Tables{
		Symbols: []SymbolWeight{
			{SymbolMoney, 2},
			{SymbolPoop, 3},
			{SymbolEggplant, 4},
			{SymbolPeach, 5},
			{SymbolSkull, 6},
			{SymbolClown, 7},
			{SymbolRainbow, 8},
			{SymbolCat, 9},
			{SymbolTaco, 10},
			{SymbolMushroom, 11},
			{SymbolCheese, 12},
			{SymbolCigar, 13},
		},
		Triples: map[model.Symbol]Rule{
			SymbolMoney:    {50, "Money Bags!"},
			SymbolPoop:     {45, "Holy Crap!"},
			SymbolEggplant: {40, "Triple Eggplant"},
			SymbolPeach:    {35, "Peachy Keen"},
			SymbolSkull:    {30, "Dead Lucky"},
			SymbolClown:    {25, "Clown Fiesta"},
			SymbolRainbow:  {20, "Rainbow Riches"},
			SymbolCat:      {18, "Cat's Meow"},
			SymbolTaco:     {15, "Taco Tuesday"},
			SymbolMushroom: {12, "Mushroom Power"},
			SymbolCheese:   {10, "Big Cheese"},
			SymbolCigar:    {8, "Smoking Hot"},
		},
		Pairs: map[model.Symbol]Rule{
			SymbolMoney:    {5, "Double Money"},
			SymbolPoop:     {4, "Double Trouble"},
			SymbolEggplant: {4, "Double Eggplant"},
			SymbolPeach:    {3, "Double Peach"},
			SymbolSkull:    {3, "Double Skull"},
		},
		MirrorMultiplier: 2,
		MirrorLabel:      "Mirror Match",
		TripleChance:     0.15,
		PairChance:       0.40,
		RepeatBias:       0.10,
		MinBet:           1,
		MaxBet:           10,
		InitialBalance:   10,
	}
}

// TotalWeight - сумма весов алфавита
func (t Tables) TotalWeight() int {
	total := 0
	for _, sw := range t.Symbols {
		total += sw.Weight
	}
	return total
}
