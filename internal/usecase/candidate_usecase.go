package usecase

import (
	"context"
	"errors"
	"time"

	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

// ListByOffer returns the candidates of one offer, newest first. An unknown
// offer id yields an empty list, not an error.
func (u *candidateUsecase) ListByOffer(ctx context.Context, offerID int64) ([]domain.Candidate, error) {
	return u.candidateRepo.FetchByOffer(ctx, offerID)
}

func (u *candidateUsecase) ListAll(ctx context.Context) ([]domain.CandidateWithJob, error) {
	return u.candidateRepo.FetchAll(ctx)
}

func (u *candidateUsecase) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := requirePermission(ctx, domain.OpManageCandidates); err != nil {
		return err
	}

	valid := false
	for _, s := range domain.CandidateStatuses {
		if status == s {
			valid = true
			break
		}
	}
	if !valid {
		return apperror.BadRequest("Statut invalide")
	}

	err := u.candidateRepo.UpdateStatus(ctx, id, status, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Candidat non trouvé")
	}
	return err
}
