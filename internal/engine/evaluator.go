package engine

import "scroggy_backend/internal/model"

// Evaluate оценивает исход спина по упорядоченным правилам.
// Побеждает первое совпавшее правило, выплаты не суммируются:
//  1. три одинаковых - по таблице Triples
//  2. пара спереди (позиции 0,1) - по таблице Pairs
//  3. пара сзади (позиции 1,2) - по таблице Pairs
//  4. зеркало (позиции 0,2 равны, центр другой) - фиксированный множитель
//  5. проигрыш: Won=false, Payout=0, Label пустой
func (e *Engine) Evaluate(outcome model.Outcome, bet int) model.RoundResult {
	res := model.RoundResult{Outcome: outcome}

	if outcome[0] == outcome[1] && outcome[1] == outcome[2] {
		if rule, ok := e.tables.Triples[outcome[0]]; ok {
			res.Won = true
			res.Payout = bet * rule.Multiplier
			res.Label = rule.Label
			return res
		}
	}

	if outcome[0] == outcome[1] {
		if rule, ok := e.tables.Pairs[outcome[0]]; ok {
			res.Won = true
			res.Payout = bet * rule.Multiplier
			res.Label = rule.Label
			return res
		}
	}

	if outcome[1] == outcome[2] {
		if rule, ok := e.tables.Pairs[outcome[1]]; ok {
			res.Won = true
			res.Payout = bet * rule.Multiplier
			res.Label = rule.Label
			return res
		}
	}

	if outcome[0] == outcome[2] && outcome[0] != outcome[1] {
		res.Won = true
		res.Payout = bet * e.tables.MirrorMultiplier
		res.Label = e.tables.MirrorLabel
		return res
	}

	return res
}
