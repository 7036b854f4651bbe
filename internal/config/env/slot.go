package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scroggy_backend/internal/config"
	"scroggy_backend/internal/engine"
	"scroggy_backend/internal/model"
)

type ruleYAML struct {
	Multiplier int    `yaml:"multiplier"`
	Label      string `yaml:"label"`
}

type symbolYAML struct {
	ID     string    `yaml:"id"`
	Weight int       `yaml:"weight"`
	Triple ruleYAML  `yaml:"triple"`
	Pair   *ruleYAML `yaml:"pair"`
}

type slotYAML struct {
	Slot struct {
		MinBet         int          `yaml:"min_bet"`
		MaxBet         int          `yaml:"max_bet"`
		InitialBalance int          `yaml:"initial_balance"`
		TripleChance   float64      `yaml:"triple_chance"`
		PairChance     float64      `yaml:"pair_chance"`
		RepeatBias     float64      `yaml:"repeat_bias"`
		Mirror         ruleYAML     `yaml:"mirror"`
		Symbols        []symbolYAML `yaml:"symbols"`
	} `yaml:"slot"`
}

type slotConfig struct {
	tables engine.Tables
}

// NewSlotConfigFromYAML читает игровую математику слота из YAML файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}

	var parsed slotYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	tables, err := toTables(parsed)
	if err != nil {
		return nil, err
	}

	return &slotConfig{tables: tables}, nil
}

func (cfg *slotConfig) Tables() engine.Tables {
	return cfg.tables
}

func toTables(parsed slotYAML) (engine.Tables, error) {
	s := parsed.Slot

	if len(s.Symbols) == 0 {
		return engine.Tables{}, errors.New("slot config: symbol alphabet is empty")
	}
	// Полосе принудительной пары нужен отличный от пары третий символ
	if s.PairChance > 0 && len(s.Symbols) < 2 {
		return engine.Tables{}, errors.New("slot config: forced pair band requires at least 2 symbols")
	}
	if s.TripleChance < 0 || s.PairChance < 0 || s.TripleChance+s.PairChance >= 1 {
		return engine.Tables{}, errors.New("slot config: band probabilities must leave room for the free band")
	}
	if s.MinBet < 1 || s.MaxBet < s.MinBet {
		return engine.Tables{}, errors.New("slot config: invalid bet bounds")
	}

	tables := engine.Tables{
		Symbols:          make([]engine.SymbolWeight, 0, len(s.Symbols)),
		Triples:          make(map[model.Symbol]engine.Rule, len(s.Symbols)),
		Pairs:            make(map[model.Symbol]engine.Rule),
		MirrorMultiplier: s.Mirror.Multiplier,
		MirrorLabel:      s.Mirror.Label,
		TripleChance:     s.TripleChance,
		PairChance:       s.PairChance,
		RepeatBias:       s.RepeatBias,
		MinBet:           s.MinBet,
		MaxBet:           s.MaxBet,
		InitialBalance:   s.InitialBalance,
	}

	for _, sym := range s.Symbols {
		if sym.Weight <= 0 {
			return engine.Tables{}, fmt.Errorf("slot config: symbol %q has non-positive weight", sym.ID)
		}

		id := model.Symbol(sym.ID)
		tables.Symbols = append(tables.Symbols, engine.SymbolWeight{
			Symbol: id,
			Weight: sym.Weight,
		})
		tables.Triples[id] = engine.Rule{
			Multiplier: sym.Triple.Multiplier,
			Label:      sym.Triple.Label,
		}
		if sym.Pair != nil {
			tables.Pairs[id] = engine.Rule{
				Multiplier: sym.Pair.Multiplier,
				Label:      sym.Pair.Label,
			}
		}
	}

	return tables, nil
}
