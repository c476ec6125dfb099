package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/terracommons/settlement-service/internal/usecase"
	recdto "github.com/terracommons/settlement-service/internal/usecase/dto/reconciliation"
)

type ReconciliationHandler struct {
	ReconciliationUsecase usecase.ReconciliationUsecase
}

func NewReconciliationHandler(reconciliationUsecase usecase.ReconciliationUsecase) *ReconciliationHandler {
	return &ReconciliationHandler{ReconciliationUsecase: reconciliationUsecase}
}

func (h *ReconciliationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	from, errFrom := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	to, errTo := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if territoryID == "" || errFrom != nil || errTo != nil {
		writeError(w, http.StatusBadRequest, "territory_id, from and to (RFC3339) are required")
		return
	}

	report, err := h.ReconciliationUsecase.BuildReport(territoryID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

type reconcileRequest struct {
	TerritoryID            string    `json:"territory_id"`
	PeriodStart            time.Time `json:"period_start"`
	PeriodEnd              time.Time `json:"period_end"`
	StatementGrossRevenue  int64     `json:"statement_gross_revenue"`
	StatementFeeRevenue    int64     `json:"statement_fee_revenue"`
	StatementPayoutExpense int64     `json:"statement_payout_expense"`
}

func (h *ReconciliationHandler) ReconcileStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TerritoryID == "" {
		writeError(w, http.StatusBadRequest, "territory_id is required")
		return
	}

	record, err := h.ReconciliationUsecase.ReconcileStatement(&recdto.ReconcileStatementInput{
		TerritoryID:            req.TerritoryID,
		PeriodStart:            req.PeriodStart,
		PeriodEnd:              req.PeriodEnd,
		StatementGrossRevenue:  req.StatementGrossRevenue,
		StatementFeeRevenue:    req.StatementFeeRevenue,
		StatementPayoutExpense: req.StatementPayoutExpense,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *ReconciliationHandler) GetPlatformBalance(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	currency := r.URL.Query().Get("currency")
	if territoryID == "" || currency == "" {
		writeError(w, http.StatusBadRequest, "territory_id and currency are required")
		return
	}

	balance, err := h.ReconciliationUsecase.GetPlatformBalance(territoryID, currency)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(balance)
}

func (h *ReconciliationHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	if territoryID == "" {
		writeError(w, http.StatusBadRequest, "territory_id is required")
		return
	}

	records, err := h.ReconciliationUsecase.ListRecords(territoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
