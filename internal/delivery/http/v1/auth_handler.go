package v1

import (
	"net/http"
	"time"

	"grh-backend/config"
	"grh-backend/internal/delivery/http/middleware"
	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"
	"grh-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	public.POST("/auth/login", loginLimiter, handler.Login)
	public.POST("/auth/logout", handler.Logout)

	protected.GET("/auth/me", handler.Me)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email/password and receive a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and password are required"))
		return
	}

	user, err := h.authUC.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	maxAge := h.cfg.SessionMaxAgeDays * 24 * 60 * 60
	token, err := auth.MintSessionToken(h.cfg.JWTSecret, user.ID, time.Duration(maxAge)*time.Second)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	secure := c.Request.TLS != nil
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)

	response.Success(c, http.StatusOK, "Connexion réussie", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Déconnexion réussie", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Return the user resolved from the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := ctx.Value(domain.KeyUserID).(int64)
	email, _ := ctx.Value(domain.KeyUserEmail).(string)
	role, _ := ctx.Value(domain.KeyUserRole).(string)

	response.Success(c, http.StatusOK, "Current user", gin.H{
		"id":    userID,
		"email": email,
		"role":  role,
	})
}
