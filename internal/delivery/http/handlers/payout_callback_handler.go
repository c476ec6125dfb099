package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/terracommons/settlement-service/internal/domain"
	payoutusecase "github.com/terracommons/settlement-service/internal/usecase/payout"
	"gorm.io/gorm"
)

type gatewayCallbackRequest struct {
	PayoutID  string `json:"payout_id"`
	Succeeded bool   `json:"succeeded"`
	Permanent bool   `json:"permanent"`
	Reason    string `json:"reason"`
}

// PayoutCallbackHandler receives the gateway's asynchronous payout verdicts.
type PayoutCallbackHandler struct {
	PayoutUsecase payoutusecase.PayoutUsecase
}

func NewPayoutCallbackHandler(payoutUsecase payoutusecase.PayoutUsecase) *PayoutCallbackHandler {
	return &PayoutCallbackHandler{PayoutUsecase: payoutUsecase}
}

func (h *PayoutCallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req gatewayCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PayoutID == "" {
		writeError(w, http.StatusBadRequest, "payout_id is required")
		return
	}

	err := h.PayoutUsecase.HandleGatewayResult(r.Context(), domain.GatewayResult{
		PayoutID:  req.PayoutID,
		Succeeded: req.Succeeded,
		Permanent: req.Permanent,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "unknown payout_id")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
