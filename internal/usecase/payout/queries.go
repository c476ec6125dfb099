package usecase

import "github.com/terracommons/settlement-service/internal/domain"

func (uc *DefaultPayoutUsecase) GetBatchByID(batchID string) (*domain.PayoutBatch, error) {
	return uc.BatchRepo.GetBatchByID(batchID)
}

func (uc *DefaultPayoutUsecase) ListPendingApprovals(territoryID string) ([]*domain.PayoutBatch, error) {
	return uc.BatchRepo.ListBatchesByStatus(territoryID, domain.PayoutBatchPendingApproval)
}
