package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/request"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/response"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/repository"
	"github.com/kelvinjuma/airtime-recharge-service/internal/usecase"
)

type AuthHandler struct {
	UserUsecase usecase.UserUsecase
}

func NewAuthHandler(userUsecase usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{UserUsecase: userUsecase}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	user, err := h.UserUsecase.Register(req.Phone, req.Pin)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneTaken) {
			writeJSON(w, http.StatusConflict, response.ErrorResponse{Success: false, Error: "phone number already registered"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.RegisterResponse{
		ID:    user.ID,
		Phone: user.Phone,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	token, user, err := h.UserUsecase.Login(req.Phone, req.Pin)
	if err != nil {
		if errors.Is(err, usecase.ErrWrongCredentials) {
			writeJSON(w, http.StatusUnauthorized, response.ErrorResponse{Success: false, Error: "wrong phone or pin"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.LoginResponse{
		Token: token,
		ID:    user.ID,
		Phone: user.Phone,
		Role:  user.Role,
	})
}
