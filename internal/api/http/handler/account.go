package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// AccountService defines the account directory operations.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	GetProfile(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error
	LookupByEmail(ctx context.Context, email string) (model.User, error)
	ConfirmVerification(ctx context.Context, token string) (model.User, error)
	RequestDeletion(ctx context.Context, id uuid.UUID, email string) error
	ConfirmDeletion(ctx context.Context, token string) (model.User, error)
}

// Account handles HTTP endpoints for the account directory.
type Account struct {
	accountService AccountService
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		logger:         logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /usuarios.
func (h *Account) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Account handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Account handler: user registered",
		"user_id", user.ID)

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	model.User
	SessionToken string `json:"token"`
}

// Login handles POST /login.
func (h *Account) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, sessionToken, err := h.accountService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Account handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{User: user, SessionToken: sessionToken})
}

// GetProfile handles GET /usuarios/:id.
func (h *Account) GetProfile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	user, err := h.accountService.GetProfile(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Photo *string `json:"photo"`
}

// UpdateProfile handles PUT /usuarios/:id. Absent fields keep their stored
// values.
func (h *Account) UpdateProfile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accountService.UpdateProfile(c.Request.Context(), model.UpdateProfileParams{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		h.logger.Error("Account handler: profile update failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PUT /usuarios/:id/senha.
func (h *Account) ChangePassword(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.accountService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		h.logger.Error("Account handler: password change failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ResetPassword handles PUT /redefinir-senha/:id.
func (h *Account) ResetPassword(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		h.logger.Error("Account handler: password reset failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type lookupByEmailRequest struct {
	Email string `json:"email"`
}

// LookupByEmail handles POST /verificar-email, used by the forgot-password
// flow to find the account before resetting.
func (h *Account) LookupByEmail(c *gin.Context) {
	var req lookupByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accountService.LookupByEmail(c.Request.Context(), req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}

// ConfirmVerification handles GET /verificar-email?token=. It renders an HTML
// page since the request comes from an emailed link.
func (h *Account) ConfirmVerification(c *gin.Context) {
	user, err := h.accountService.ConfirmVerification(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.logger.Error("Account handler: email verification failed",
			"error", err.Error())
		renderPage(c, http.StatusNotFound, "Link inválido",
			"Este link de verificação não é válido ou já foi utilizado.")
		return
	}

	h.logger.Info("Account handler: email verified",
		"user_id", user.ID)

	renderPage(c, http.StatusOK, "Email confirmado",
		"Sua conta foi verificada com sucesso. Você já pode fazer login.")
}

type requestDeletionRequest struct {
	Email string `json:"email"`
}

// RequestDeletion handles POST /usuarios/:id/solicitar-exclusao.
func (h *Account) RequestDeletion(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req requestDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.accountService.RequestDeletion(c.Request.Context(), id, req.Email); err != nil {
		h.logger.Error("Account handler: deletion request failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ConfirmDeletion handles GET /confirmar-exclusao?token=, rendering an HTML
// page for the emailed link.
func (h *Account) ConfirmDeletion(c *gin.Context) {
	user, err := h.accountService.ConfirmDeletion(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.logger.Error("Account handler: account deletion failed",
			"error", err.Error())
		renderPage(c, http.StatusNotFound, "Link inválido",
			"Este link de exclusão não é válido ou já foi utilizado.")
		return
	}

	h.logger.Info("Account handler: account deleted",
		"user_id", user.ID)

	renderPage(c, http.StatusOK, "Conta excluída",
		"Sua conta e todos os seus dados foram removidos.")
}
