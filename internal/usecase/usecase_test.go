package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grh-backend/internal/domain"
	"grh-backend/internal/usecase"
	"grh-backend/pkg/apperror"
	"grh-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockJobOfferRepo struct {
	mock.Mock
}

func (m *MockJobOfferRepo) Fetch(ctx context.Context, filter domain.JobOfferFilter) ([]domain.JobOfferWithCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOfferWithCount), args.Error(1)
}

func (m *MockJobOfferRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOffer), args.Error(1)
}

func (m *MockJobOfferRepo) Create(ctx context.Context, offer *domain.JobOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockJobOfferRepo) UpdatePartial(ctx context.Context, id int64, patch domain.JobOfferPatch, updatedAt time.Time) error {
	return m.Called(ctx, id, patch, updatedAt).Error(0)
}

func (m *MockJobOfferRepo) Close(ctx context.Context, id int64, updatedAt time.Time) error {
	return m.Called(ctx, id, updatedAt).Error(0)
}

func (m *MockJobOfferRepo) CountCandidates(ctx context.Context, offerID int64) (int64, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobOfferRepo) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobOfferRepo) Departments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) FetchByOffer(ctx context.Context, offerID int64) ([]domain.Candidate, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) FetchAll(ctx context.Context) ([]domain.CandidateWithJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWithJob), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	return m.Called(ctx, id, status, updatedAt).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStatsRepo) WorkforceSnapshot(ctx context.Context) (*domain.WorkforceSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkforceSnapshot), args.Error(1)
}

func (m *MockStatsRepo) PayrollSummary(ctx context.Context) (*domain.PayrollSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSummary), args.Error(1)
}

// MockGenerator captures the text and prompt passed to the completion call.
type MockGenerator struct {
	mock.Mock
	LastText   string
	LastPrompt string
}

func (m *MockGenerator) GenerateSummary(ctx context.Context, text, systemPrompt string) (string, error) {
	m.LastText = text
	m.LastPrompt = systemPrompt
	args := m.Called(ctx, text, systemPrompt)
	return args.String(0), args.Error(1)
}

func hrCtx() context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(2))
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleHR)
}

func employeeCtx() context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(5))
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleEmployee)
}

func strptr(s string) *string { return &s }

func TestCreateOfferValidation(t *testing.T) {
	mockRepo := new(MockJobOfferRepo)
	uc := usecase.NewJobOfferUsecase(mockRepo)

	valid := func() *domain.JobOffer {
		return &domain.JobOffer{
			Title:       "Développeur Backend",
			Department:  "IT",
			Location:    "Nouakchott",
			Type:        "CDI",
			Description: "Conception et maintenance des services internes.",
		}
	}

	t.Run("Should reject a title shorter than 3 characters", func(t *testing.T) {
		offer := valid()
		offer.Title = "Go"
		err := uc.CreateOffer(hrCtx(), offer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Le titre doit contenir au moins 3 caractères")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an unknown contract type", func(t *testing.T) {
		offer := valid()
		offer.Type = "Contractor"
		err := uc.CreateOffer(hrCtx(), offer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Type de contrat invalide")
	})

	t.Run("Should reject a description shorter than 10 characters", func(t *testing.T) {
		offer := valid()
		offer.Description = "Trop bref"
		err := uc.CreateOffer(hrCtx(), offer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "La description doit contenir au moins 10 caractères")
	})

	t.Run("Should count accented characters as single runes", func(t *testing.T) {
		offer := valid()
		offer.Title = "Géo" // 3 runes, 4 bytes
		mockRepo.On("Create", mock.Anything, offer).Return(nil).Once()
		err := uc.CreateOffer(hrCtx(), offer)
		assert.NoError(t, err)
	})

	t.Run("Should default status to open and stamp timestamps", func(t *testing.T) {
		offer := valid()
		mockRepo.On("Create", mock.Anything, offer).Return(nil).Once()
		err := uc.CreateOffer(hrCtx(), offer)
		assert.NoError(t, err)
		assert.Equal(t, domain.OfferStatusOpen, offer.Status)
		assert.False(t, offer.CreatedAt.IsZero())
		assert.Equal(t, offer.CreatedAt, offer.UpdatedAt)
	})
}

func TestOfferPermissions(t *testing.T) {
	mockRepo := new(MockJobOfferRepo)
	uc := usecase.NewJobOfferUsecase(mockRepo)

	offer := &domain.JobOffer{
		Title:       "Comptable Senior",
		Department:  "Finance",
		Location:    "Nouakchott",
		Type:        "CDD",
		Description: "Tenue de la comptabilité générale et reporting.",
	}

	t.Run("Should deny an employee without touching the store", func(t *testing.T) {
		err := uc.CreateOffer(employeeCtx(), offer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Permission refusée")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail safe when no user is in context", func(t *testing.T) {
		err := uc.CreateOffer(context.Background(), offer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Non authentifié")
	})

	t.Run("Should deny deletion for a manager role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(9))
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleManager)
		_, err := uc.DeleteOffer(ctx, 1, true)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "DeleteCascade")
	})
}

func TestUpdateOffer(t *testing.T) {
	mockRepo := new(MockJobOfferRepo)
	uc := usecase.NewJobOfferUsecase(mockRepo)

	t.Run("Should reject an empty patch", func(t *testing.T) {
		err := uc.UpdateOffer(hrCtx(), 1, domain.JobOfferPatch{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Aucune donnée à mettre à jour")
		mockRepo.AssertNotCalled(t, "UpdatePartial")
	})

	t.Run("Should validate only supplied fields", func(t *testing.T) {
		patch := domain.JobOfferPatch{Status: strptr("archived")}
		err := uc.UpdateOffer(hrCtx(), 1, patch)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Statut invalide")
	})

	t.Run("Should map a missing offer to not found", func(t *testing.T) {
		patch := domain.JobOfferPatch{Title: strptr("Nouveau titre")}
		mockRepo.On("UpdatePartial", mock.Anything, int64(42), patch, mock.AnythingOfType("time.Time")).
			Return(domain.ErrNotFound).Once()
		err := uc.UpdateOffer(hrCtx(), 42, patch)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Offre non trouvée")
	})

	t.Run("Should allow reopening a closed offer", func(t *testing.T) {
		patch := domain.JobOfferPatch{Status: strptr(domain.OfferStatusOpen)}
		mockRepo.On("UpdatePartial", mock.Anything, int64(7), patch, mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		err := uc.UpdateOffer(hrCtx(), 7, patch)
		assert.NoError(t, err)
	})
}

func TestCloseOffer(t *testing.T) {
	t.Run("Should succeed twice in a row", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("Close", mock.Anything, int64(5), mock.AnythingOfType("time.Time")).
			Return(nil).Twice()

		assert.NoError(t, uc.CloseOffer(hrCtx(), 5))
		assert.NoError(t, uc.CloseOffer(hrCtx(), 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should map a missing offer to not found", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("Close", mock.Anything, int64(99), mock.AnythingOfType("time.Time")).
			Return(domain.ErrNotFound).Once()

		err := uc.CloseOffer(hrCtx(), 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Offre non trouvée")
	})

	t.Run("Should deny an employee without touching the store", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)

		err := uc.CloseOffer(employeeCtx(), 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Permission refusée")
		mockRepo.AssertNotCalled(t, "Close")
	})
}

func TestDeleteOfferConfirmation(t *testing.T) {
	t.Run("Should require confirmation when candidates exist", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("CountCandidates", mock.Anything, int64(3)).Return(int64(4), nil).Once()

		result, err := uc.DeleteOffer(hrCtx(), 3, false)
		assert.NoError(t, err)
		assert.True(t, result.RequiresConfirmation)
		assert.False(t, result.Deleted)
		assert.Equal(t, int64(4), result.CandidateCount)
		mockRepo.AssertNotCalled(t, "DeleteCascade")
	})

	t.Run("Should delete with candidates when forced", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("CountCandidates", mock.Anything, int64(3)).Return(int64(4), nil).Once()
		mockRepo.On("DeleteCascade", mock.Anything, int64(3)).Return(nil).Once()

		result, err := uc.DeleteOffer(hrCtx(), 3, true)
		assert.NoError(t, err)
		assert.True(t, result.Deleted)
		assert.False(t, result.RequiresConfirmation)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should delete directly when no candidates exist", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("CountCandidates", mock.Anything, int64(8)).Return(int64(0), nil).Once()
		mockRepo.On("DeleteCascade", mock.Anything, int64(8)).Return(nil).Once()

		result, err := uc.DeleteOffer(hrCtx(), 8, false)
		assert.NoError(t, err)
		assert.True(t, result.Deleted)
	})

	t.Run("Should map a missing offer to not found", func(t *testing.T) {
		mockRepo := new(MockJobOfferRepo)
		uc := usecase.NewJobOfferUsecase(mockRepo)
		mockRepo.On("CountCandidates", mock.Anything, int64(99)).Return(int64(0), nil).Once()
		mockRepo.On("DeleteCascade", mock.Anything, int64(99)).Return(domain.ErrNotFound).Once()

		_, err := uc.DeleteOffer(hrCtx(), 99, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Offre non trouvée")
	})
}

func TestCandidateStatusUpdate(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo)

	t.Run("Should reject a status outside the enum", func(t *testing.T) {
		err := uc.UpdateStatus(hrCtx(), 1, "archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Statut invalide")
		mockRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should accept a valid transition", func(t *testing.T) {
		mockRepo.On("UpdateStatus", mock.Anything, int64(1), "shortlisted", mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		err := uc.UpdateStatus(hrCtx(), 1, "shortlisted")
		assert.NoError(t, err)
	})

	t.Run("Should map a missing candidate to not found", func(t *testing.T) {
		mockRepo.On("UpdateStatus", mock.Anything, int64(77), "hired", mock.AnythingOfType("time.Time")).
			Return(domain.ErrNotFound).Once()
		err := uc.UpdateStatus(hrCtx(), 77, "hired")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidat non trouvé")
	})

	t.Run("Should deny an employee", func(t *testing.T) {
		err := uc.UpdateStatus(employeeCtx(), 1, "hired")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Permission refusée")
	})
}

func TestAuthenticate(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)

	hash, err := auth.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Email: "rh@grh.local", PasswordHash: hash, Role: domain.RoleHR}

	t.Run("Should reject empty credentials", func(t *testing.T) {
		_, err := uc.Authenticate(context.Background(), "", "")
		assert.Error(t, err)
	})

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "ghost@grh.local").Return(nil, domain.ErrNotFound).Once()
		_, err := uc.Authenticate(context.Background(), "ghost@grh.local", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "rh@grh.local").Return(user, nil).Once()
		_, err := uc.Authenticate(context.Background(), "rh@grh.local", "wrong-pass")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Should authenticate with the right password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "rh@grh.local").Return(user, nil).Once()
		got, err := uc.Authenticate(context.Background(), "rh@grh.local", "s3cret-pass")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})
}

func TestSummarizeCandidate(t *testing.T) {
	t.Run("Should not call the generator for a missing candidate", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		mockCandidates := new(MockCandidateRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, mockCandidates, gen)

		mockCandidates.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound).Once()
		_, err := uc.SummarizeCandidate(hrCtx(), 404)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidat non trouvé")
		gen.AssertNotCalled(t, "GenerateSummary")
	})

	t.Run("Should include profile fields and fallbacks in the prompt text", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		mockCandidates := new(MockCandidateRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, mockCandidates, gen)

		years := 6
		candidate := &domain.Candidate{
			ID:                12,
			FirstName:         "Aicha",
			LastName:          "Mint Ahmed",
			Email:             "aicha@example.com",
			Phone:             "+22240000000",
			YearsOfExperience: &years,
			Skills:            []string{"Go", "PostgreSQL"},
		}
		mockCandidates.On("GetByID", mock.Anything, int64(12)).Return(candidate, nil).Once()
		gen.On("GenerateSummary", mock.Anything, mock.Anything, mock.Anything).
			Return("Profil solide.", nil).Once()

		summary, err := uc.SummarizeCandidate(hrCtx(), 12)
		assert.NoError(t, err)
		assert.Equal(t, "Profil solide.", summary)
		assert.Contains(t, gen.LastText, "Nom: Aicha Mint Ahmed")
		assert.Contains(t, gen.LastText, "Expérience: 6 ans")
		assert.Contains(t, gen.LastText, "Compétences: Go, PostgreSQL")
		assert.Contains(t, gen.LastText, "Niveau d'études: Non spécifié")
		assert.Contains(t, gen.LastText, "Notes: Aucune")
		assert.Contains(t, gen.LastPrompt, "expert en recrutement")
	})

	t.Run("Should surface a generator failure as a gateway error", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		mockCandidates := new(MockCandidateRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, mockCandidates, gen)

		mockCandidates.On("GetByID", mock.Anything, int64(12)).Return(&domain.Candidate{ID: 12}, nil).Once()
		gen.On("GenerateSummary", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("upstream timeout")).Once()

		_, err := uc.SummarizeCandidate(hrCtx(), 12)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 502, appErr.Code)
		assert.Contains(t, err.Error(), "Erreur lors de la génération du résumé")
	})

	t.Run("Should deny an employee before any lookup", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		mockCandidates := new(MockCandidateRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, mockCandidates, gen)

		_, err := uc.SummarizeCandidate(employeeCtx(), 12)
		assert.Error(t, err)
		mockCandidates.AssertNotCalled(t, "GetByID")
	})
}

func TestWorkforceInsight(t *testing.T) {
	t.Run("Should require an authenticated session", func(t *testing.T) {
		uc := usecase.NewInsightUsecase(new(MockStatsRepo), new(MockCandidateRepo), new(MockGenerator))
		_, err := uc.WorkforceInsight(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Non authentifié")
	})

	t.Run("Should flatten the snapshot into the prompt text", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, new(MockCandidateRepo), gen)

		snapshot := &domain.WorkforceSnapshot{
			EmployeeTotal:  10,
			EmployeeActive: 8,
			AvgTenureYears: 3.25,
			Departments:    []domain.DepartmentCount{{Name: "IT", Count: 4}, {Name: "Finance", Count: 6}},
			Attendance: []domain.AttendanceDay{
				{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), PresentCount: 7},
			},
			Recruitment: []domain.StatusCount{{Status: "new", Count: 3}},
		}
		mockStats.On("WorkforceSnapshot", mock.Anything).Return(snapshot, nil).Once()
		gen.On("GenerateSummary", mock.Anything, mock.Anything, mock.Anything).
			Return("Analyse stratégique.", nil).Once()

		insight, err := uc.WorkforceInsight(employeeCtx())
		assert.NoError(t, err)
		assert.Equal(t, "Analyse stratégique.", insight)
		assert.Contains(t, gen.LastText, "Total Employés: 10 (8 actifs)")
		assert.Contains(t, gen.LastText, "Ancienneté Moyenne: 3.2 ans")
		assert.Contains(t, gen.LastText, "IT: 4, Finance: 6")
		assert.Contains(t, gen.LastText, "Le 28/08/2026: 7")
		assert.Contains(t, gen.LastText, "new: 3")
		assert.Contains(t, gen.LastPrompt, "consultant expert en RH")
	})

	t.Run("Should surface a generator failure as a gateway error", func(t *testing.T) {
		mockStats := new(MockStatsRepo)
		gen := new(MockGenerator)
		uc := usecase.NewInsightUsecase(mockStats, new(MockCandidateRepo), gen)

		mockStats.On("WorkforceSnapshot", mock.Anything).Return(&domain.WorkforceSnapshot{}, nil).Once()
		gen.On("GenerateSummary", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("connection refused")).Once()

		_, err := uc.WorkforceInsight(hrCtx())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Erreur lors de la génération des insights")
	})
}
