package converter

import (
	lbDto "scroggy_backend/internal/api/dto/leaderboard"
	dto "scroggy_backend/internal/api/dto/slot"
	"scroggy_backend/internal/model"
)

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Bet: req.Bet,
	}
}

func ToDepositRequest(req dto.DepositRequest) model.DepositRequest {
	return model.DepositRequest{
		Amount:      req.Amount,
		TxSignature: req.TxSignature,
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Result: toRoundResult(res.Result),
		Player: ToPlayerResponse(res.Player),
	}
}

func toRoundResult(res model.RoundResult) dto.RoundResult {
	return dto.RoundResult{
		Symbols: [3]string{
			string(res.Outcome[0]),
			string(res.Outcome[1]),
			string(res.Outcome[2]),
		},
		Won:    res.Won,
		Payout: res.Payout,
		Label:  res.Label,
	}
}

func ToPlayerResponse(p model.Player) dto.PlayerResponse {
	return dto.PlayerResponse{
		UserID:       p.UserID,
		Name:         p.Name,
		Balance:      p.Balance,
		TotalWins:    p.TotalWins,
		TotalLosses:  p.TotalLosses,
		BiggestWin:   p.BiggestWin,
		GamesPlayed:  p.GamesPlayed,
		CreatedAt:    p.CreatedAt,
		LastPlayedAt: p.LastPlayedAt,
	}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []lbDto.Entry {
	result := make([]lbDto.Entry, len(entries))
	for i, e := range entries {
		result[i] = lbDto.Entry{
			Rank:      e.Rank,
			UserID:    e.UserID,
			Name:      e.Name,
			Balance:   e.Balance,
			TotalWins: e.TotalWins,
		}
	}
	return result
}
