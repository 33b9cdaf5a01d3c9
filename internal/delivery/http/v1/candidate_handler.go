package v1

import (
	"net/http"
	"strconv"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public *gin.RouterGroup, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	public.GET("/candidates", handler.ListAll)
	public.GET("/offers/:id/candidates", handler.ListByOffer)

	protected.PATCH("/candidates/:id/status", handler.UpdateStatus)
}

type UpdateCandidateStatusRequest struct {
	Status string `json:"status"`
}

// ListAll godoc
// @Summary      List all candidates
// @Description  All candidates joined with their offer's title, newest first
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) ListAll(c *gin.Context) {
	candidates, err := h.candidateUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des candidats", candidates)
}

// ListByOffer godoc
// @Summary      List candidates of an offer
// @Description  Candidates referencing the offer, newest first. An unknown offer yields an empty list.
// @Tags         candidates
// @Produce      json
// @Param        id  path  int  true  "Offer ID"
// @Success      200  {object}  response.Response
// @Router       /offers/{id}/candidates [get]
func (h *CandidateHandler) ListByOffer(c *gin.Context) {
	offerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	candidates, err := h.candidateUC.ListByOffer(c.Request.Context(), offerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des candidats", candidates)
}

// UpdateStatus godoc
// @Summary      Update candidate status
// @Description  Move a candidate through the pipeline: new, inReview, shortlisted, rejected, hired (admin/hr only)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path  int                           true  "Candidate ID"
// @Param        status  body  UpdateCandidateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/status [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateCandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statut du candidat mis à jour", nil)
}
