package v1

import (
	"net/http"
	"time"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HRHandler struct {
	hrUC domain.HRUsecase
}

func NewHRHandler(protected *gin.RouterGroup, hrUC domain.HRUsecase) {
	handler := &HRHandler{hrUC: hrUC}

	protected.GET("/attendance", handler.ListAttendance)
	protected.GET("/leave", handler.ListLeaveRequests)
	protected.GET("/trainings", handler.ListTrainings)
}

// startOfDay returns midnight of t's day in t's own location. Truncating on
// the UTC day boundary would shift the default date near midnight for
// non-UTC servers.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ListAttendance godoc
// @Summary      List attendance for a day
// @Tags         hr
// @Produce      json
// @Param        date  query  string  false  "Day (YYYY-MM-DD), defaults to today"
// @Success      200  {object}  response.Response
// @Router       /attendance [get]
// @Security     BearerAuth
func (h *HRHandler) ListAttendance(c *gin.Context) {
	date := startOfDay(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid date format, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	records, err := h.hrUC.ListAttendance(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des présences", records)
}

// ListLeaveRequests godoc
// @Summary      List leave requests
// @Tags         hr
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /leave [get]
// @Security     BearerAuth
func (h *HRHandler) ListLeaveRequests(c *gin.Context) {
	requests, err := h.hrUC.ListLeaveRequests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des congés", requests)
}

// ListTrainings godoc
// @Summary      List trainings
// @Tags         hr
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /trainings [get]
// @Security     BearerAuth
func (h *HRHandler) ListTrainings(c *gin.Context) {
	trainings, err := h.hrUC.ListTrainings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des formations", trainings)
}
