package slot

import (
	"errors"
	"net/http"

	dto "scroggy_backend/internal/api/dto/slot"
	"scroggy_backend/internal/converter"
	"scroggy_backend/internal/model"
	"scroggy_backend/internal/service"
	"scroggy_backend/pkg/req"
	"scroggy_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	player, err := h.serv.Restart(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*player))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.serv.Deposit(r.Context(), converter.ToDepositRequest(payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*player))
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	player, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*player))
}

// writeServiceError переводит ошибки сервиса в HTTP статусы:
// валидация - 400, нет профиля - 404, исчерпанные конфликты версий - 409
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.WriteError(w, http.StatusBadRequest, verr.Reason)
	case errors.Is(err, model.ErrPlayerNotFound):
		resp.WriteError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, model.ErrVersionConflict):
		resp.WriteError(w, http.StatusConflict, "player state changed, retry")
	default:
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
