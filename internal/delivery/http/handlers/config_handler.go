package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/usecase"
)

// ConfigHandler manages territory fee rules and payout policies.
type ConfigHandler struct {
	ConfigUsecase usecase.ConfigUsecase
}

func NewConfigHandler(configUsecase usecase.ConfigUsecase) *ConfigHandler {
	return &ConfigHandler{ConfigUsecase: configUsecase}
}

type setFeeConfigRequest struct {
	TerritoryID string  `json:"territory_id"`
	ItemType    string  `json:"item_type"`
	FeeMode     string  `json:"fee_mode"`
	FeeValue    float64 `json:"fee_value"`
}

func (h *ConfigHandler) FeeConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.setFeeConfig(w, r)
	case http.MethodGet:
		h.getFeeConfig(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ConfigHandler) setFeeConfig(w http.ResponseWriter, r *http.Request) {
	var req setFeeConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.ConfigUsecase.SetFeeConfig(req.TerritoryID, req.ItemType, domain.FeeMode(req.FeeMode), req.FeeValue)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cfg)
}

func (h *ConfigHandler) getFeeConfig(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	itemType := r.URL.Query().Get("item_type")
	if territoryID == "" || itemType == "" {
		writeError(w, http.StatusBadRequest, "territory_id and item_type are required")
		return
	}

	cfg, err := h.ConfigUsecase.GetActiveFeeConfig(territoryID, itemType)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if cfg == nil {
		writeError(w, http.StatusNotFound, "no active fee config")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

type setPayoutConfigRequest struct {
	TerritoryID         string `json:"territory_id"`
	RetentionPeriodDays int    `json:"retention_period_days"`
	MinimumPayoutAmount int64  `json:"minimum_payout_amount"`
	MaximumPayoutAmount *int64 `json:"maximum_payout_amount,omitempty"`
	Frequency           string `json:"frequency"`
}

func (h *ConfigHandler) PayoutConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.setPayoutConfig(w, r)
	case http.MethodGet:
		h.getPayoutConfig(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ConfigHandler) setPayoutConfig(w http.ResponseWriter, r *http.Request) {
	var req setPayoutConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.ConfigUsecase.SetPayoutConfig(
		req.TerritoryID,
		req.RetentionPeriodDays,
		req.MinimumPayoutAmount,
		req.MaximumPayoutAmount,
		domain.PayoutFrequency(req.Frequency),
	)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cfg)
}

func (h *ConfigHandler) getPayoutConfig(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	if territoryID == "" {
		writeError(w, http.StatusBadRequest, "territory_id is required")
		return
	}

	cfg, err := h.ConfigUsecase.GetActivePayoutConfig(territoryID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if cfg == nil {
		writeError(w, http.StatusNotFound, "no active payout config")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}
