package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/request"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/response"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/middleware"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
	rechargeuc "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/recharge"
)

const maxBulkUploadBytes = 10 << 20 // 10 MiB

type RechargeHandler struct {
	RechargeUsecase rechargeuc.RechargeUsecase
}

func NewRechargeHandler(rechargeUsecase rechargeuc.RechargeUsecase) *RechargeHandler {
	return &RechargeHandler{RechargeUsecase: rechargeUsecase}
}

func (h *RechargeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response.ErrorResponse{Success: false, Error: "please authenticate"})
		return
	}

	var req request.SubmitRechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	output, err := h.RechargeUsecase.SubmitRecharge(r.Context(), &rechargedto.SubmitRechargeInput{
		Caller:         caller,
		ReceiverMsisdn: req.ReceiverMsisdn,
		Amount:         req.Amount,
		ServicePin:     req.ServicePin,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Bulk accepts a multipart CSV upload under the "file" field. The upload is
// spooled to a temp file that is removed on every exit path.
func (h *RechargeHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response.ErrorResponse{Success: false, Error: "please authenticate"})
		return
	}

	if err := r.ParseMultipartForm(maxBulkUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid multipart form"})
		return
	}
	servicePin := r.FormValue("servicePin")

	upload, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "CSV file is required"})
		return
	}
	defer upload.Close()

	tmp, err := os.CreateTemp("", "bulk-recharge-*.csv")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Success: false, Error: "failed to store upload"})
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, upload); err != nil {
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Success: false, Error: "failed to store upload"})
		return
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Success: false, Error: "failed to read upload"})
		return
	}

	output, err := h.RechargeUsecase.SubmitBulk(r.Context(), tmp, servicePin, caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *RechargeHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response.ErrorResponse{Success: false, Error: "please authenticate"})
		return
	}

	query := r.URL.Query()
	page, _ := strconv.ParseInt(query.Get("page"), 10, 64)
	pageSize, _ := strconv.ParseInt(query.Get("pageSize"), 10, 64)

	output, err := h.RechargeUsecase.ListTransactions(&rechargedto.ListTransactionsInput{
		Caller:   caller,
		Page:     page,
		PageSize: pageSize,
		Search:   query.Get("search"),
		Range:    query.Get("range"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	transactions := make([]response.TransactionResponse, 0, len(output.Transactions))
	for _, recharge := range output.Transactions {
		transactions = append(transactions, response.TransactionResponse{
			TransactionID:  recharge.TransactionID,
			SenderMsisdn:   recharge.SenderMsisdn,
			ReceiverMsisdn: recharge.ReceiverMsisdn,
			Amount:         recharge.Amount,
			Status:         string(recharge.Status),
			ErrorMessage:   recharge.ErrorMessage,
			Provider:       recharge.Provider,
			CreatedAt:      recharge.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, response.ListTransactionsResponse{
		Transactions: transactions,
		Total:        output.Total,
		Pages:        output.Pages,
	})
}

func (h *RechargeHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response.ErrorResponse{Success: false, Error: "please authenticate"})
		return
	}

	stats, err := h.RechargeUsecase.GetStatistics(caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	series := make([]response.MonthlyVolume, 0, len(stats.MonthlyTimeSeries))
	for _, entry := range stats.MonthlyTimeSeries {
		series = append(series, response.MonthlyVolume{Month: entry.Month, Total: entry.Total})
	}

	writeJSON(w, http.StatusOK, response.StatisticsResponse{
		MonthlyTotal:      stats.MonthlyTotal,
		NewClientsCount:   stats.NewClientsCount,
		MonthlyTimeSeries: series,
	})
}
