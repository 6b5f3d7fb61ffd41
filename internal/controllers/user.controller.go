package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/internal/middleware"
	"newsportal/internal/models"
	"newsportal/internal/repository"
	"newsportal/internal/services"
)

type UserController struct {
	auth     *services.AuthService
	users    repository.UserRepository
	articles repository.ArticleRepository
	log      *logrus.Logger
}

func NewUserController(auth *services.AuthService, users repository.UserRepository, articles repository.ArticleRepository, log *logrus.Logger) *UserController {
	return &UserController{auth: auth, users: users, articles: articles, log: log}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required" example:"asha@example.com"`
	OTP   string `json:"otp" binding:"required" example:"482913"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required" example:"asha@example.com"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required" example:"n3wpassword"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"Institution"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type RegisterResponse struct {
	User               *models.User `json:"user"`
	VerificationMethod string       `json:"verificationMethod" example:"otp"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a Reader or Institution account and send its email verification
// @Tags user
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "Account data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	user, err := uc.auth.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, uc.log, err, "Failed to register user")
		return
	}
	success(c, http.StatusCreated, "User registered successfully. Check your email to verify your account.", RegisterResponse{
		User:               user,
		VerificationMethod: string(uc.auth.VerificationKind()),
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and receive a JWT
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 403 {object} map[string]interface{} "Email address is not verified"
// @Router /api/users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	token, user, err := uc.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, uc.log, err, "Failed to log in")
		return
	}
	success(c, http.StatusOK, "Login successful", AuthResponse{Token: token, User: user})
}

// VerifyEmailLink godoc
// @Summary Verify email by link
// @Description Confirm an account with the token from a verification link
// @Tags user
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} map[string]interface{} "Email verified successfully"
// @Failure 400 {object} map[string]interface{} "Invalid or expired verification code"
// @Router /api/users/verify-email/{token} [get]
func (uc *UserController) VerifyEmailLink(c *gin.Context) {
	token, user, err := uc.auth.VerifyLink(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, uc.log, err, "Failed to verify email")
		return
	}
	success(c, http.StatusOK, "Email verified successfully", AuthResponse{Token: token, User: user})
}

// VerifyEmailOTP godoc
// @Summary Verify email by code
// @Description Confirm an account with the six-digit code sent by email
// @Tags user
// @Accept json
// @Produce json
// @Param body body VerifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]interface{} "Email verified successfully"
// @Failure 400 {object} map[string]interface{} "Invalid or expired verification code"
// @Router /api/users/verify-email-otp [post]
func (uc *UserController) VerifyEmailOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	token, user, err := uc.auth.VerifyOTP(c.Request.Context(), req.Email, strings.TrimSpace(req.OTP))
	if err != nil {
		respondError(c, uc.log, err, "Failed to verify email")
		return
	}
	success(c, http.StatusOK, "Email verified successfully", AuthResponse{Token: token, User: user})
}

// ResendVerification godoc
// @Summary Resend the verification email
// @Tags user
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Verification email sent"
// @Failure 400 {object} map[string]interface{} "Email address is already verified"
// @Router /api/users/resend-verification [post]
func (uc *UserController) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	if err := uc.auth.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, uc.log, err, "Failed to resend verification")
		return
	}
	success(c, http.StatusOK, "If the account exists, a verification email has been sent", nil)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Tags user
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset email sent"
// @Failure 500 {object} map[string]interface{} "Failed to send reset email"
// @Router /api/users/forgot-password [post]
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	if err := uc.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, uc.log, err, "Failed to send reset email")
		return
	}
	success(c, http.StatusOK, "If the account exists, a password reset email has been sent", nil)
}

// ResetPassword godoc
// @Summary Reset a password
// @Tags user
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param body body ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]interface{} "Password reset successfully"
// @Failure 400 {object} map[string]interface{} "Invalid or expired reset token"
// @Router /api/users/reset-password/{token} [post]
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	if err := uc.auth.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		respondError(c, uc.log, err, "Failed to reset password")
		return
	}
	success(c, http.StatusOK, "Password reset successfully", nil)
}

// GetCurrentUser godoc
// @Summary Current user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	success(c, http.StatusOK, "User retrieved successfully", user)
}

// GetBookmarks godoc
// @Summary Bookmarked articles
// @Description The caller's bookmarked articles in bookmark order
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Bookmarks retrieved successfully"
// @Router /api/users/bookmarks [get]
func (uc *UserController) GetBookmarks(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	articles, err := uc.articles.FindByIDs(c.Request.Context(), user.Bookmarks)
	if err != nil {
		respondError(c, uc.log, err, "Failed to retrieve bookmarks")
		return
	}
	success(c, http.StatusOK, "Bookmarks retrieved successfully", articles)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondError(c, uc.log, err, "Failed to retrieve users")
		return
	}
	success(c, http.StatusOK, "Users retrieved successfully", users)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body UpdateRoleRequest true "New role"
// @Success 200 {object} map[string]interface{} "Role updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid role"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id}/role [put]
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	role := models.Role(strings.TrimSpace(req.Role))
	if !role.Valid() {
		badRequest(c, "Role must be Reader, Admin or Institution", nil)
		return
	}

	if err := uc.users.UpdateRole(c.Request.Context(), id, role); err != nil {
		respondError(c, uc.log, err, "Failed to update role")
		return
	}
	user, err := uc.users.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.log, err, "Failed to update role")
		return
	}
	success(c, http.StatusOK, "Role updated successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Failure 400 {object} map[string]interface{} "Cannot delete your own account"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if actor, _ := middleware.CurrentUser(c); actor != nil && actor.ID == id {
		badRequest(c, "You cannot delete your own account", nil)
		return
	}

	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, uc.log, err, "Failed to delete user")
		return
	}
	success(c, http.StatusOK, "User deleted successfully", nil)
}
