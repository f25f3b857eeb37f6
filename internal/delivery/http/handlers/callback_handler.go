package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/request"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/response"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
	rechargeuc "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/recharge"
)

// CallbackHandler receives the provider's asynchronous webhooks. Structural
// problems with the payload are client errors; everything else is
// acknowledged 2xx, per standard webhook conventions.
type CallbackHandler struct {
	RechargeUsecase rechargeuc.RechargeUsecase
}

func NewCallbackHandler(rechargeUsecase rechargeuc.RechargeUsecase) *CallbackHandler {
	return &CallbackHandler{RechargeUsecase: rechargeUsecase}
}

func (h *CallbackHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	output, err := h.RechargeUsecase.HandleValidateCallback(&rechargedto.ValidateCallbackInput{
		TransactionID: req.TransactionID,
		PhoneNumber:   req.PhoneNumber,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CallbackHandler) Status(w http.ResponseWriter, r *http.Request) {
	var req request.StatusCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	output, err := h.RechargeUsecase.HandleStatusCallback(r.Context(), &rechargedto.StatusCallbackInput{
		TransactionID: req.TransactionID,
		PhoneNumber:   req.PhoneNumber,
		Status:        req.Status,
		ErrorMessage:  req.ErrorMessage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
