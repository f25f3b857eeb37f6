package mappers

import (
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/models"
)

func ToRechargeModel(recharge *domain.Recharge) *models.RechargeModel {
	return &models.RechargeModel{
		TransactionID:  recharge.TransactionID,
		SenderMsisdn:   recharge.SenderMsisdn,
		ReceiverMsisdn: recharge.ReceiverMsisdn,
		Amount:         recharge.Amount,
		Status:         recharge.Status,
		ErrorMessage:   recharge.ErrorMessage,
		OwnerID:        recharge.OwnerID,
		Provider:       recharge.Provider,
		CreatedAt:      recharge.CreatedAt,
		UpdatedAt:      recharge.UpdatedAt,
	}
}

func ToRechargeDomain(model *models.RechargeModel) *domain.Recharge {
	return &domain.Recharge{
		TransactionID:  model.TransactionID,
		SenderMsisdn:   model.SenderMsisdn,
		ReceiverMsisdn: model.ReceiverMsisdn,
		Amount:         model.Amount,
		Status:         model.Status,
		ErrorMessage:   model.ErrorMessage,
		OwnerID:        model.OwnerID,
		Provider:       model.Provider,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
