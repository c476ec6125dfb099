package mappers

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainPlatformBalance(model *models.PlatformFinancialBalanceModel) *domain.PlatformFinancialBalance {
	return &domain.PlatformFinancialBalance{
		ID:            model.ID,
		TerritoryID:   model.TerritoryID,
		Currency:      model.Currency,
		RevenueAmount: model.RevenueAmount,
		ExpenseAmount: model.ExpenseAmount,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToDomainReconciliationRecord(model *models.ReconciliationRecordModel) *domain.ReconciliationRecord {
	return &domain.ReconciliationRecord{
		ID:                     model.ID,
		TerritoryID:            model.TerritoryID,
		PeriodStart:            model.PeriodStart,
		PeriodEnd:              model.PeriodEnd,
		InternalGrossRevenue:   model.InternalGrossRevenue,
		InternalFeeRevenue:     model.InternalFeeRevenue,
		InternalPayoutExpense:  model.InternalPayoutExpense,
		StatementGrossRevenue:  model.StatementGrossRevenue,
		StatementFeeRevenue:    model.StatementFeeRevenue,
		StatementPayoutExpense: model.StatementPayoutExpense,
		Status:                 model.Status,
		Notes:                  model.Notes,
		CreatedAt:              model.CreatedAt,
	}
}

func ToGORMReconciliationRecord(record *domain.ReconciliationRecord) *models.ReconciliationRecordModel {
	return &models.ReconciliationRecordModel{
		ID:                     record.ID,
		TerritoryID:            record.TerritoryID,
		PeriodStart:            record.PeriodStart,
		PeriodEnd:              record.PeriodEnd,
		InternalGrossRevenue:   record.InternalGrossRevenue,
		InternalFeeRevenue:     record.InternalFeeRevenue,
		InternalPayoutExpense:  record.InternalPayoutExpense,
		StatementGrossRevenue:  record.StatementGrossRevenue,
		StatementFeeRevenue:    record.StatementFeeRevenue,
		StatementPayoutExpense: record.StatementPayoutExpense,
		Status:                 record.Status,
		Notes:                  record.Notes,
		CreatedAt:              record.CreatedAt,
	}
}
