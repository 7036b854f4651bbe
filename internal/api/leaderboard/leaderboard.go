package leaderboard

import (
	"net/http"
	"strconv"

	"scroggy_backend/internal/converter"
	"scroggy_backend/internal/service"
	"scroggy_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.serv.Top(r.Context(), limit)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}
