package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gatewayRequest "github.com/terracommons/settlement-service/internal/delivery/http/dto/gateway/request"
	gatewayResponse "github.com/terracommons/settlement-service/internal/delivery/http/dto/gateway/response"
	"github.com/terracommons/settlement-service/internal/domain"
)

// HTTPPayoutGateway talks to the external payout gateway over its REST API.
// It implements domain.PayoutGateway; verdicts come back later through the
// callback endpoint.
type HTTPPayoutGateway struct {
	Address string
	client  *http.Client
}

func NewHTTPPayoutGateway(address string) (*HTTPPayoutGateway, error) {
	return &HTTPPayoutGateway{
		Address: address,
		client:  http.DefaultClient,
	}, nil
}

func (g *HTTPPayoutGateway) SubmitPayout(ctx context.Context, instruction domain.PayoutInstruction) (string, error) {
	requestBodyBytes, err := json.Marshal(gatewayRequest.SubmitPayoutRequest{
		Reference:    instruction.Reference,
		SellerUserID: instruction.SellerUserID,
		Amount:       instruction.Amount,
		Currency:     instruction.Currency,
	})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/payouts", g.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var payoutResponse gatewayResponse.SubmitPayoutResponse
		if err := json.Unmarshal(responseBodyBytes, &payoutResponse); err != nil {
			return "", err
		}
		return payoutResponse.PayoutID, nil
	}

	var errorResponse gatewayResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return "", err
	}
	return "", errors.New(errorResponse.Error)
}
