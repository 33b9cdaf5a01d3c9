package v1

import (
	"net/http"
	"strconv"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobOfferHandler struct {
	offerUC domain.JobOfferUsecase
}

func NewJobOfferHandler(public *gin.RouterGroup, protected *gin.RouterGroup, offerUC domain.JobOfferUsecase) {
	handler := &JobOfferHandler{offerUC: offerUC}

	// Read-only listing is not gated
	public.GET("/offers", handler.List)
	public.GET("/offers/:id", handler.GetDetails)
	public.GET("/departments", handler.ListDepartments)

	// Mutations require the admin/hr permission gate
	protected.POST("/offers", handler.Create)
	protected.PATCH("/offers/:id", handler.Update)
	protected.POST("/offers/:id/close", handler.Close)
	protected.DELETE("/offers/:id", handler.Delete)
}

type CreateOfferRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateOfferRequest struct {
	Title       *string `json:"title"`
	Department  *string `json:"department"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// List godoc
// @Summary      List job offers
// @Description  List offers with candidate counts, filtered by status, department and search term
// @Tags         offers
// @Produce      json
// @Param        status      query  string  false  "open | closed | all"
// @Param        department  query  string  false  "Department name or all"
// @Param        search      query  string  false  "Substring match on title or description"
// @Success      200  {object}  response.Response
// @Router       /offers [get]
func (h *JobOfferHandler) List(c *gin.Context) {
	filter := domain.JobOfferFilter{
		Status:     c.DefaultQuery("status", "all"),
		Department: c.DefaultQuery("department", "all"),
		Search:     c.Query("search"),
	}

	offers, err := h.offerUC.ListOffers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des offres", offers)
}

// GetDetails godoc
// @Summary      Get a job offer
// @Tags         offers
// @Produce      json
// @Param        id  path  int  true  "Offer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /offers/{id} [get]
func (h *JobOfferHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	offer, err := h.offerUC.GetOffer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Détails de l'offre", offer)
}

// Create godoc
// @Summary      Create a job offer
// @Description  Create a new job offer (admin/hr only)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        offer  body  CreateOfferRequest  true  "Offer JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /offers [post]
// @Security     BearerAuth
func (h *JobOfferHandler) Create(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	offer := &domain.JobOffer{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.offerUC.CreateOffer(c.Request.Context(), offer); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Offre d'emploi créée avec succès", gin.H{"id": offer.ID})
}

// Update godoc
// @Summary      Update a job offer
// @Description  Partially update an offer; only supplied fields are written (admin/hr only)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Offer ID"
// @Param        offer  body  UpdateOfferRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /offers/{id} [patch]
// @Security     BearerAuth
func (h *JobOfferHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch := domain.JobOfferPatch{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.offerUC.UpdateOffer(c.Request.Context(), id, patch); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre d'emploi mise à jour avec succès", nil)
}

// Close godoc
// @Summary      Close a job offer
// @Description  Set the offer status to closed; closing an already-closed offer succeeds (admin/hr only)
// @Tags         offers
// @Produce      json
// @Param        id  path  int  true  "Offer ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /offers/{id}/close [post]
// @Security     BearerAuth
func (h *JobOfferHandler) Close(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.offerUC.CloseOffer(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre fermée avec succès", nil)
}

// Delete godoc
// @Summary      Delete a job offer
// @Description  Delete an offer. When candidates reference it and force is not set, the deletion is blocked and the candidate count is returned for confirmation (admin/hr only)
// @Tags         offers
// @Produce      json
// @Param        id     path   int     true   "Offer ID"
// @Param        force  query  bool    false  "Also delete referencing candidates"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /offers/{id} [delete]
// @Security     BearerAuth
func (h *JobOfferHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	force := c.Query("force") == "true"

	result, err := h.offerUC.DeleteOffer(c.Request.Context(), id, force)
	if err != nil {
		c.Error(err)
		return
	}

	if result.RequiresConfirmation {
		response.Error(c, http.StatusConflict, "Cette offre contient des candidats", gin.H{
			"requires_confirmation": true,
			"candidate_count":       result.CandidateCount,
		})
		return
	}

	response.Success(c, http.StatusOK, "Offre d'emploi supprimée avec succès", nil)
}

// ListDepartments godoc
// @Summary      List offer departments
// @Description  Distinct departments used by offers, for filter dropdowns
// @Tags         offers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /departments [get]
func (h *JobOfferHandler) ListDepartments(c *gin.Context) {
	departments, err := h.offerUC.ListDepartments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des départements", departments)
}
