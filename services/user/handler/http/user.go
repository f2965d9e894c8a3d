package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/user"
)

// UserHandler handles HTTP requests for accounts
type UserHandler struct {
	userUC user.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC user.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// RegisterRoutes registers the account routes. Register and login are
// public; the profile lookup requires a bearer token.
func (h *UserHandler) RegisterRoutes(public, authenticated *echo.Group) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	authenticated.GET("/users/:userID/profile", h.Profile)
}

// Register creates a warehouse or dealer account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "account created", created)
}

// Login exchanges credentials for a bearer token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "login successful", auth)
}

// Profile returns a public profile with derived statistics
func (h *UserHandler) Profile(c echo.Context) error {
	profile, err := h.userUC.Profile(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "profile loaded", profile)
}
