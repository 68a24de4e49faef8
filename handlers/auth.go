package handlers

import (
	"net/http"

	"docbook/models"
	"docbook/services/appointment"
	"docbook/services/auth"
	"docbook/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthSvc        auth.AuthService
	AppointmentSvc appointment.AppointmentService
}

func NewAuthHandler(authSvc auth.AuthService, appointmentSvc appointment.AppointmentService) *AuthHandler {
	return &AuthHandler{AuthSvc: authSvc, AppointmentSvc: appointmentSvc}
}

// RegisterHandler creates an account and signs it in.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	resp, err := h.AuthSvc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler exchanges email and password for a session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	resp, err := h.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.AuthSvc.Logout(c.Request.Context(), c.GetString(utils.TokenKey)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// MeHandler returns the signed-in user with appointment counters.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	profile, err := h.AppointmentSvc.Stats(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
