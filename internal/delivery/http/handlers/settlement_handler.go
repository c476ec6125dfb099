package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/usecase"
	checkoutdto "github.com/terracommons/settlement-service/internal/usecase/dto/checkout"
	"gorm.io/gorm"
)

// SettlementHandler is the REST surface for checkout settlement and seller
// balance queries.
type SettlementHandler struct {
	SettlementUsecase usecase.SettlementUsecase
}

func NewSettlementHandler(settlementUsecase usecase.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{SettlementUsecase: settlementUsecase}
}

type createCheckoutRequest struct {
	TerritoryID string `json:"territory_id"`
	BuyerUserID string `json:"buyer_user_id"`
	StoreID     string `json:"store_id"`
	Currency    string `json:"currency"`
	Items       []struct {
		ItemID       string `json:"item_id"`
		ItemType     string `json:"item_type"`
		Title        string `json:"title"`
		SellerUserID string `json:"seller_user_id"`
		Quantity     int64  `json:"quantity"`
		UnitPrice    int64  `json:"unit_price"`
	} `json:"items"`
}

func (h *SettlementHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := &checkoutdto.CreateCheckoutInput{
		TerritoryID: req.TerritoryID,
		BuyerUserID: req.BuyerUserID,
		StoreID:     req.StoreID,
		Currency:    req.Currency,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, checkoutdto.CartItemInput{
			ItemID:       item.ItemID,
			ItemType:     item.ItemType,
			Title:        item.Title,
			SellerUserID: item.SellerUserID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	output, err := h.SettlementUsecase.CreateCheckout(input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(output.Checkout)
}

type markPaidRequest struct {
	CheckoutID string `json:"checkout_id"`
}

func (h *SettlementHandler) MarkCheckoutPaid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req markPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CheckoutID == "" {
		writeError(w, http.StatusBadRequest, "checkout_id is required")
		return
	}

	if err := h.SettlementUsecase.MarkCheckoutPaid(r.Context(), req.CheckoutID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SettlementHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	checkoutID := r.URL.Query().Get("checkout_id")
	if checkoutID == "" {
		writeError(w, http.StatusBadRequest, "checkout_id is required")
		return
	}

	checkout, err := h.SettlementUsecase.GetCheckoutByID(checkoutID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkout)
}

type cancelCheckoutRequest struct {
	CheckoutID string `json:"checkout_id"`
}

func (h *SettlementHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CheckoutID == "" {
		writeError(w, http.StatusBadRequest, "checkout_id is required")
		return
	}

	if err := h.SettlementUsecase.CancelCheckout(req.CheckoutID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SettlementHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transaction_id")
	if transactionID == "" {
		writeError(w, http.StatusBadRequest, "transaction_id is required")
		return
	}

	txn, err := h.SettlementUsecase.GetSellerTransaction(transactionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(txn)
}

type cancelTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

func (h *SettlementHandler) CancelTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "transaction_id is required")
		return
	}

	if err := h.SettlementUsecase.CancelSellerTransaction(r.Context(), req.TransactionID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SettlementHandler) GetSellerBalance(w http.ResponseWriter, r *http.Request) {
	territoryID := r.URL.Query().Get("territory_id")
	sellerUserID := r.URL.Query().Get("seller_user_id")
	if territoryID == "" || sellerUserID == "" {
		writeError(w, http.StatusBadRequest, "territory_id and seller_user_id are required")
		return
	}

	balance, err := h.SettlementUsecase.GetSellerBalance(territoryID, sellerUserID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(balance)
}

func writeUsecaseError(w http.ResponseWriter, err error) {
	var transition *domain.InvalidTransitionError
	var insufficient *domain.InsufficientFundsError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &transition), errors.Is(err, domain.ErrAlreadyTerminal):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &insufficient),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMixedSellerCart),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrMissingTerritory),
		errors.Is(err, domain.ErrNegativeFeeValue),
		errors.Is(err, domain.ErrUnknownFeeMode),
		errors.Is(err, domain.ErrTotalsMismatch):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
