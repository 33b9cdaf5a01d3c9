package v1

import (
	"net/http"
	"strconv"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightUC domain.InsightUsecase
}

func NewInsightHandler(public *gin.RouterGroup, protected *gin.RouterGroup, insightUC domain.InsightUsecase) {
	handler := &InsightHandler{insightUC: insightUC}

	public.GET("/dashboard/stats", handler.DashboardStats)

	protected.GET("/payroll/summary", handler.PayrollSummary)
	protected.POST("/insights/workforce", handler.WorkforceInsight)
	protected.POST("/candidates/:id/summary", handler.SummarizeCandidate)
}

// DashboardStats godoc
// @Summary      Dashboard counters
// @Description  Headline counters: total employees, present today, pending leaves, completed trainings
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *InsightHandler) DashboardStats(c *gin.Context) {
	stats, err := h.insightUC.DashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statistiques du tableau de bord", stats)
}

// PayrollSummary godoc
// @Summary      Payroll summary
// @Description  Monthly payroll total and per-department salary aggregates
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /payroll/summary [get]
// @Security     BearerAuth
func (h *InsightHandler) PayrollSummary(c *gin.Context) {
	summary, err := h.insightUC.PayrollSummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Résumé de la paie", summary)
}

// WorkforceInsight godoc
// @Summary      Generate a workforce insight
// @Description  Aggregate HR statistics are summarized into strategic prose by the AI endpoint
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /insights/workforce [post]
// @Security     BearerAuth
func (h *InsightHandler) WorkforceInsight(c *gin.Context) {
	insight, err := h.insightUC.WorkforceInsight(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analyse générée", insight)
}

// SummarizeCandidate godoc
// @Summary      Summarize a candidate profile
// @Description  The candidate's fields are summarized into recruiter prose by the AI endpoint (admin/hr only)
// @Tags         insights
// @Produce      json
// @Param        id  path  int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /candidates/{id}/summary [post]
// @Security     BearerAuth
func (h *InsightHandler) SummarizeCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	summary, err := h.insightUC.SummarizeCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Résumé généré", summary)
}
