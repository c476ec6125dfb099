package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/terracommons/settlement-service/internal/domain"
	payoutusecase "github.com/terracommons/settlement-service/internal/usecase/payout"
	"gorm.io/gorm"
)

// PayoutAdminHandler is the operator surface for the payout engine: approval
// queue inspection, manual batch dispatch, and batch lookup.
type PayoutAdminHandler struct {
	PayoutUsecase payoutusecase.PayoutUsecase
}

func NewPayoutAdminHandler(payoutUsecase payoutusecase.PayoutUsecase) *PayoutAdminHandler {
	return &PayoutAdminHandler{PayoutUsecase: payoutUsecase}
}

func (h *PayoutAdminHandler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	if territoryID == "" {
		writeError(w, http.StatusBadRequest, "territory_id is required")
		return
	}

	batches, err := h.PayoutUsecase.ListPendingApprovals(territoryID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(batches)
}

type approveBatchRequest struct {
	BatchID string `json:"batch_id"`
}

func (h *PayoutAdminHandler) ApproveBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req approveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BatchID == "" {
		writeError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	if err := h.PayoutUsecase.DispatchApprovedBatch(r.Context(), req.BatchID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "batch not found")
		case errors.Is(err, domain.ErrBatchNotDispatchable):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *PayoutAdminHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	batchID := r.URL.Query().Get("batch_id")
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	batch, err := h.PayoutUsecase.GetBatchByID(batchID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(batch)
}
