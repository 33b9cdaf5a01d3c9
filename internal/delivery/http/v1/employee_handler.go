package v1

import (
	"net/http"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeUC domain.EmployeeUsecase
}

func NewEmployeeHandler(public *gin.RouterGroup, protected *gin.RouterGroup, employeeUC domain.EmployeeUsecase) {
	handler := &EmployeeHandler{employeeUC: employeeUC}

	public.GET("/employees", handler.List)
	protected.POST("/employees", handler.Create)
}

// List godoc
// @Summary      List employees
// @Description  Employees joined with their user account and department, ordered by first name
// @Tags         employees
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeUC.ListEmployees(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des employés", employees)
}

// Create godoc
// @Summary      Create an employee
// @Description  Create an employee record (admin/hr only)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employee  body  domain.Employee  true  "Employee JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employees [post]
// @Security     BearerAuth
func (h *EmployeeHandler) Create(c *gin.Context) {
	var employee domain.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.employeeUC.CreateEmployee(c.Request.Context(), &employee); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Employé créé avec succès", gin.H{"id": employee.ID})
}
