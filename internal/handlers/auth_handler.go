package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/middleware"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type AuthHandler struct {
	base
	authService  services.AuthService
	cookieMaxAge int // секунды жизни cookie `jwt`
}

func NewAuthHandler(authService services.AuthService, cookieExpiresDays int, dev bool) *AuthHandler {
	return &AuthHandler{
		base:         base{dev: dev},
		authService:  authService,
		cookieMaxAge: cookieExpiresDays * 24 * 60 * 60,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, h.cookieMaxAge, "/", "", true, true)
}

// @Summary      Register a new lecturer
// @Description  Creates a pending account; an admin must approve it before login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Registration data"
// @Success      201       {object}  responses.Envelope
// @Failure      400       {object}  responses.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	if err := h.authService.Register(&req); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated,
		"Registration successful! Your account is under review. Once approved, we will send you an email with instructions to access your dashboard.",
		nil)
}

// @Summary      Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  responses.Envelope
// @Failure      400    {object}  responses.Envelope
// @Failure      403    {object}  responses.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Please provide the required field")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("[auth][login] failed for %q: %v", req.Email, err)
		h.fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	responses.Success(c, http.StatusOK, "Login successful.", gin.H{"user": user})
}

// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// идемпотентно: просто гасим cookie, сессии на сервере нет
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
	responses.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// @Summary      Fetch the authenticated user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      401  {object}  responses.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) FetchMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	responses.Success(c, http.StatusOK, "User fetched successfully", user)
}

type updateMeRequest struct {
	NewFullName string `json:"new_full_name"`
	NewEmail    string `json:"new_email" binding:"omitempty,email"`
}

// @Summary      Update own profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        update  body      updateMeRequest  true  "Fields to change"
// @Success      200     {object}  responses.Envelope
// @Failure      400     {object}  responses.Envelope
// @Router       /api/auth/update-me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid data provided")
		return
	}
	updated, err := h.authService.UpdateProfile(user, req.NewFullName, req.NewEmail)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "User information updated successfully", updated)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// @Summary      Change password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        change  body      changePasswordRequest  true  "Current and new password"
// @Success      200     {object}  responses.Envelope
// @Failure      400     {object}  responses.Envelope
// @Router       /api/auth/change-password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid data provided")
		return
	}
	if err := h.authService.ChangePassword(user, req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Password changed successfully", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary      Request a password reset
// @Description  Always responds success, whether or not the email is registered
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        forgot  body      forgotPasswordRequest  true  "Email"
// @Success      200     {object}  responses.Envelope
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Please provide a valid email")
		return
	}
	if err := h.authService.ForgotPassword(req.Email); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Password reset link sent to your email", nil)
}

type resetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// @Summary      Reset password with a token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        reset  body      resetPasswordRequest  true  "Token and new password"
// @Success      200    {object}  responses.Envelope
// @Failure      400    {object}  responses.Envelope
// @Router       /api/auth/reset-password [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid data provided")
		return
	}
	if err := h.authService.ResetPassword(req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Password reset successfully", nil)
}

// @Summary      Send email verification code
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.Envelope
// @Router       /api/auth/send-verification-code [post]
func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	if err := h.authService.SendVerificationCode(user); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Verification code sent to your email", nil)
}

type verifyEmailRequest struct {
	Code int `json:"code" binding:"required"`
}

// @Summary      Verify email with a code
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verify  body      verifyEmailRequest  true  "6-digit code"
// @Success      200     {object}  responses.Envelope
// @Failure      400     {object}  responses.Envelope
// @Router       /api/auth/verify-email [patch]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid verification code")
		return
	}
	if err := h.authService.VerifyEmail(user, req.Code); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Email verified successfully", nil)
}

type makeAdminRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

// @Summary      Promote a user to admin
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        promote  body      makeAdminRequest  true  "Target user id"
// @Success      200      {object}  responses.Envelope
// @Failure      403      {object}  responses.Envelope
// @Failure      404      {object}  responses.Envelope
// @Router       /api/auth/make-admin [patch]
func (h *AuthHandler) MakeAdmin(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	var req makeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}
	target, err := h.authService.MakeAdmin(actor, req.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "User promoted to admin successfully", target)
}
