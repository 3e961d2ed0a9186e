package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
)

// AccountHandler serves user signup and the user and admin sessions. A
// caller holds at most one session: logging in as admin replaces a user
// session and vice versa.
type AccountHandler struct {
	service  *app.AccountService
	sessions *middleware.Sessions
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(service *app.AccountService, sessions *middleware.Sessions) *AccountHandler {
	return &AccountHandler{
		service:  service,
		sessions: sessions,
	}
}

// Signup handles POST /api/v1/users/signup.
//
// @Summary Register a user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/users/signup [post]
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	user, err := h.service.Signup(c.Request.Context(), app.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login handles POST /api/v1/users/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	p, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.sessions.Start(c, p); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful", Name: p.Name})
}

// Logout handles POST /api/v1/users/logout. An admin session is left alone.
func (h *AccountHandler) Logout(c *gin.Context) {
	if middleware.GetPrincipal(c).IsUser() {
		h.sessions.End(c)
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Check handles GET /api/v1/users/check.
func (h *AccountHandler) Check(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if !p.IsUser() {
		c.JSON(http.StatusOK, dto.CheckUserResponse{User: false})
		return
	}

	c.JSON(http.StatusOK, dto.CheckUserResponse{User: true, Name: p.Name})
}

// AdminLogin handles POST /api/v1/admin/login.
//
// @Summary Start an admin session
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/admin/login [post]
func (h *AccountHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	p, err := h.service.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.sessions.Start(c, p); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful"})
}

// AdminLogout handles POST /api/v1/admin/logout. It clears the session only
// when it is an admin one.
func (h *AccountHandler) AdminLogout(c *gin.Context) {
	if middleware.GetPrincipal(c).IsAdmin() {
		h.sessions.End(c)
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// AdminCheck handles GET /api/v1/admin/check.
func (h *AccountHandler) AdminCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CheckAdminResponse{Admin: middleware.GetPrincipal(c).IsAdmin()})
}

// RegisterAccountRoutes registers the /users and /admin routes on rg.
func (h *AccountHandler) RegisterAccountRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("/signup", h.Signup)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout)
	users.GET("/check", h.Check)

	admin := rg.Group("/admin")
	admin.POST("/login", h.AdminLogin)
	admin.POST("/logout", h.AdminLogout)
	admin.GET("/check", h.AdminCheck)
}
