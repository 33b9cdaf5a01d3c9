package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job offer statuses. An offer starts open; CloseOffer moves it to closed.
const (
	OfferStatusOpen   = "open"
	OfferStatusClosed = "closed"
)

// ContractTypes enumerates the valid values for JobOffer.Type.
var ContractTypes = []string{"CDI", "CDD", "Stage", "Freelance"}

type JobOffer struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobOfferWithCount annotates an offer with the number of candidates
// referencing it.
type JobOfferWithCount struct {
	JobOffer
	CandidateCount int64 `json:"candidate_count"`
}

// JobOfferFilter narrows the offer listing. Zero values and "all" mean
// "no filtering on that dimension".
type JobOfferFilter struct {
	Status     string
	Department string
	Search     string
}

// JobOfferPatch enumerates which fields a partial update supplies.
// Nil pointers are left untouched by the store.
type JobOfferPatch struct {
	Title       *string `json:"title"`
	Department  *string `json:"department"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p JobOfferPatch) IsEmpty() bool {
	return p.Title == nil && p.Department == nil && p.Location == nil &&
		p.Type == nil && p.Description == nil && p.Status == nil
}

// DeleteOfferResult is the outcome of a guarded deletion. When the offer
// still has candidates and force was not set, RequiresConfirmation is true
// and nothing was deleted.
type DeleteOfferResult struct {
	Deleted              bool  `json:"deleted"`
	RequiresConfirmation bool  `json:"requires_confirmation"`
	CandidateCount       int64 `json:"candidate_count"`
}

type JobOfferRepository interface {
	Fetch(ctx context.Context, filter JobOfferFilter) ([]JobOfferWithCount, error)
	GetByID(ctx context.Context, id int64) (*JobOffer, error)
	Create(ctx context.Context, offer *JobOffer) error
	UpdatePartial(ctx context.Context, id int64, patch JobOfferPatch, updatedAt time.Time) error
	Close(ctx context.Context, id int64, updatedAt time.Time) error
	CountCandidates(ctx context.Context, offerID int64) (int64, error)
	// DeleteCascade removes the offer's candidates and the offer itself in a
	// single transaction so a partial failure leaves neither deleted.
	DeleteCascade(ctx context.Context, id int64) error
	Departments(ctx context.Context) ([]string, error)
}

type JobOfferUsecase interface {
	ListOffers(ctx context.Context, filter JobOfferFilter) ([]JobOfferWithCount, error)
	GetOffer(ctx context.Context, id int64) (*JobOffer, error)
	CreateOffer(ctx context.Context, offer *JobOffer) error
	UpdateOffer(ctx context.Context, id int64, patch JobOfferPatch) error
	CloseOffer(ctx context.Context, id int64) error
	DeleteOffer(ctx context.Context, id int64, force bool) (*DeleteOfferResult, error)
	ListDepartments(ctx context.Context) ([]string, error)
}
