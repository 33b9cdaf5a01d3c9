package domain

import (
	"context"
	"time"
)

// CandidateStatuses enumerates the valid values for Candidate.Status.
var CandidateStatuses = []string{"new", "inReview", "shortlisted", "rejected", "hired"}

type Candidate struct {
	ID                int64     `json:"id"`
	JobOfferID        int64     `json:"job_offer_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Status            string    `json:"status"`
	CVURL             *string   `json:"cv_url"`
	YearsOfExperience *int      `json:"years_of_experience"`
	EducationLevel    *string   `json:"education_level"`
	CoverLetter       *string   `json:"cover_letter"`
	Notes             *string   `json:"notes"`
	Skills            []string  `json:"skills"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CandidateWithJob extends Candidate with the owning offer's title.
// JobTitle is nil when the offer row is gone (left join).
type CandidateWithJob struct {
	Candidate
	JobTitle *string `json:"job_title"`
}

type CandidateRepository interface {
	FetchByOffer(ctx context.Context, offerID int64) ([]Candidate, error)
	FetchAll(ctx context.Context) ([]CandidateWithJob, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error
}

type CandidateUsecase interface {
	ListByOffer(ctx context.Context, offerID int64) ([]Candidate, error)
	ListAll(ctx context.Context) ([]CandidateWithJob, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
