package usecase

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"
)

type jobOfferUsecase struct {
	offerRepo domain.JobOfferRepository
}

func NewJobOfferUsecase(offerRepo domain.JobOfferRepository) domain.JobOfferUsecase {
	return &jobOfferUsecase{offerRepo: offerRepo}
}

func (u *jobOfferUsecase) ListOffers(ctx context.Context, filter domain.JobOfferFilter) ([]domain.JobOfferWithCount, error) {
	return u.offerRepo.Fetch(ctx, filter)
}

func (u *jobOfferUsecase) GetOffer(ctx context.Context, id int64) (*domain.JobOffer, error) {
	offer, err := u.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offre non trouvée")
		}
		return nil, err
	}
	return offer, nil
}

func (u *jobOfferUsecase) CreateOffer(ctx context.Context, offer *domain.JobOffer) error {
	if err := requirePermission(ctx, domain.OpManageOffers); err != nil {
		return err
	}

	if offer.Status == "" {
		offer.Status = domain.OfferStatusOpen
	}
	if err := validateOffer(offer); err != nil {
		return err
	}

	now := time.Now()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	return u.offerRepo.Create(ctx, offer)
}

func (u *jobOfferUsecase) UpdateOffer(ctx context.Context, id int64, patch domain.JobOfferPatch) error {
	if err := requirePermission(ctx, domain.OpManageOffers); err != nil {
		return err
	}

	if err := validateOfferPatch(patch); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return apperror.BadRequest("Aucune donnée à mettre à jour")
	}

	err := u.offerRepo.UpdatePartial(ctx, id, patch, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Offre non trouvée")
	}
	return err
}

func (u *jobOfferUsecase) CloseOffer(ctx context.Context, id int64) error {
	if err := requirePermission(ctx, domain.OpManageOffers); err != nil {
		return err
	}

	// Closing an already-closed offer is a silent success.
	err := u.offerRepo.Close(ctx, id, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Offre non trouvée")
	}
	return err
}

// DeleteOffer implements the two-phase guarded deletion: when candidates
// still reference the offer and force is false, nothing is deleted and the
// caller receives the candidate count to re-prompt with.
func (u *jobOfferUsecase) DeleteOffer(ctx context.Context, id int64, force bool) (*domain.DeleteOfferResult, error) {
	if err := requirePermission(ctx, domain.OpManageOffers); err != nil {
		return nil, err
	}

	count, err := u.offerRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	if count > 0 && !force {
		return &domain.DeleteOfferResult{
			RequiresConfirmation: true,
			CandidateCount:       count,
		}, nil
	}

	if err := u.offerRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offre non trouvée")
		}
		return nil, err
	}

	return &domain.DeleteOfferResult{
		Deleted:        true,
		CandidateCount: count,
	}, nil
}

func (u *jobOfferUsecase) ListDepartments(ctx context.Context) ([]string, error) {
	return u.offerRepo.Departments(ctx)
}

// Field rules mirror the recruitment form contract. The first violated rule
// wins, checked in declaration order: title, department, location, type,
// description, status.

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) < 3 {
		return apperror.BadRequest("Le titre doit contenir au moins 3 caractères")
	}
	if utf8.RuneCountInString(title) > 191 {
		return apperror.BadRequest("Titre trop long")
	}
	return nil
}

func validateDepartment(department string) error {
	if utf8.RuneCountInString(department) < 2 {
		return apperror.BadRequest("Le département est requis")
	}
	if utf8.RuneCountInString(department) > 191 {
		return apperror.BadRequest("Département trop long")
	}
	return nil
}

func validateLocation(location string) error {
	if utf8.RuneCountInString(location) < 2 {
		return apperror.BadRequest("Le lieu est requis")
	}
	if utf8.RuneCountInString(location) > 191 {
		return apperror.BadRequest("Lieu trop long")
	}
	return nil
}

func validateContractType(contractType string) error {
	for _, valid := range domain.ContractTypes {
		if contractType == valid {
			return nil
		}
	}
	return apperror.BadRequest("Type de contrat invalide")
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) < 10 {
		return apperror.BadRequest("La description doit contenir au moins 10 caractères")
	}
	return nil
}

func validateStatus(status string) error {
	if status != domain.OfferStatusOpen && status != domain.OfferStatusClosed {
		return apperror.BadRequest("Statut invalide")
	}
	return nil
}

func validateOffer(offer *domain.JobOffer) error {
	if err := validateTitle(offer.Title); err != nil {
		return err
	}
	if err := validateDepartment(offer.Department); err != nil {
		return err
	}
	if err := validateLocation(offer.Location); err != nil {
		return err
	}
	if err := validateContractType(offer.Type); err != nil {
		return err
	}
	if err := validateDescription(offer.Description); err != nil {
		return err
	}
	return validateStatus(offer.Status)
}

// validateOfferPatch applies the same per-field rules, but only to the
// fields the patch supplies.
func validateOfferPatch(patch domain.JobOfferPatch) error {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Department != nil {
		if err := validateDepartment(*patch.Department); err != nil {
			return err
		}
	}
	if patch.Location != nil {
		if err := validateLocation(*patch.Location); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := validateContractType(*patch.Type); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return err
		}
	}
	return nil
}
