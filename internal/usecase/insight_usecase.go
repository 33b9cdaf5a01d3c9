package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grh-backend/internal/domain"
	"grh-backend/pkg/ai"
	"grh-backend/pkg/apperror"
)

// Instruction prompts sent to the completion endpoint. The application is
// French-first, so the generated prose is requested in French.
const (
	workforceInsightPrompt = "Tu es un consultant expert en RH. Analyse ces données d'entreprise et fournis une analyse stratégique concise (points forts, points faibles, recommandations) pour le directeur général. Réponds en français."
	candidateSummaryPrompt = "Tu es un expert en recrutement. Résume le profil de ce candidat en mettant en évidence ses points forts et sa pertinence pour le poste."
)

type insightUsecase struct {
	statsRepo     domain.StatsRepository
	candidateRepo domain.CandidateRepository
	generator     ai.Generator
}

func NewInsightUsecase(statsRepo domain.StatsRepository, candidateRepo domain.CandidateRepository, generator ai.Generator) domain.InsightUsecase {
	return &insightUsecase{
		statsRepo:     statsRepo,
		candidateRepo: candidateRepo,
		generator:     generator,
	}
}

func (u *insightUsecase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return u.statsRepo.DashboardStats(ctx)
}

func (u *insightUsecase) PayrollSummary(ctx context.Context) (*domain.PayrollSummary, error) {
	return u.statsRepo.PayrollSummary(ctx)
}

func (u *insightUsecase) WorkforceInsight(ctx context.Context) (string, error) {
	if err := requireSession(ctx); err != nil {
		return "", err
	}

	snapshot, err := u.statsRepo.WorkforceSnapshot(ctx)
	if err != nil {
		return "", err
	}

	insight, err := u.generator.GenerateSummary(ctx, formatWorkforceData(snapshot), workforceInsightPrompt)
	if err != nil {
		return "", apperror.BadGateway("Erreur lors de la génération des insights", err)
	}

	return insight, nil
}

func (u *insightUsecase) SummarizeCandidate(ctx context.Context, candidateID int64) (string, error) {
	if err := requirePermission(ctx, domain.OpSummarizeCandidate); err != nil {
		return "", err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Candidat non trouvé")
		}
		return "", err
	}

	summary, err := u.generator.GenerateSummary(ctx, formatCandidateProfile(candidate), candidateSummaryPrompt)
	if err != nil {
		return "", apperror.BadGateway("Erreur lors de la génération du résumé", err)
	}

	return summary, nil
}

// formatWorkforceData flattens the aggregate statistics into the plain-text
// block the consultant prompt expects.
func formatWorkforceData(snap *domain.WorkforceSnapshot) string {
	departments := make([]string, 0, len(snap.Departments))
	for _, d := range snap.Departments {
		departments = append(departments, fmt.Sprintf("%s: %d", d.Name, d.Count))
	}

	attendance := make([]string, 0, len(snap.Attendance))
	for _, a := range snap.Attendance {
		attendance = append(attendance, fmt.Sprintf("Le %s: %d", a.Date.Format("02/01/2006"), a.PresentCount))
	}

	recruitment := make([]string, 0, len(snap.Recruitment))
	for _, r := range snap.Recruitment {
		recruitment = append(recruitment, fmt.Sprintf("%s: %d", r.Status, r.Count))
	}

	return fmt.Sprintf(`Total Employés: %d (%d actifs)
Ancienneté Moyenne: %.1f ans
Répartition par Département: %s
Présences (7 derniers jours): %s
État du Recrutement: %s`,
		snap.EmployeeTotal, snap.EmployeeActive,
		snap.AvgTenureYears,
		strings.Join(departments, ", "),
		strings.Join(attendance, ", "),
		strings.Join(recruitment, ", "),
	)
}

// formatCandidateProfile flattens one candidate's fields into the profile
// block fed to the recruiter prompt.
func formatCandidateProfile(c *domain.Candidate) string {
	experience := "Non spécifié"
	if c.YearsOfExperience != nil {
		experience = fmt.Sprintf("%d", *c.YearsOfExperience)
	}

	skills := "Non spécifiées"
	if len(c.Skills) > 0 {
		skills = strings.Join(c.Skills, ", ")
	}

	return fmt.Sprintf(`Nom: %s %s
Email: %s
Téléphone: %s
Expérience: %s ans
Niveau d'études: %s
Compétences: %s
Lettre de motivation: %s
Notes: %s`,
		c.FirstName, c.LastName,
		c.Email,
		c.Phone,
		experience,
		orDefault(c.EducationLevel, "Non spécifié"),
		skills,
		orDefault(c.CoverLetter, "Non spécifiée"),
		orDefault(c.Notes, "Aucune"),
	)
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
