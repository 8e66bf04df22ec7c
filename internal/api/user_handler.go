package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/auth"
	"farmtotable-be/internal/httpctx"
	"farmtotable-be/internal/user"
)

// UserAPI wires HTTP transport with the account service.
type UserAPI struct {
	service user.Service
	tokens  *auth.Manager
}

func NewUserAPI(service user.Service, tokens *auth.Manager) UserAPI {
	return UserAPI{service: service, tokens: tokens}
}

type registerPayload struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	IsMerchant bool   `json:"is_merchant"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type profilePayload struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

// Post /api/register
func (api *UserAPI) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := api.service.Register(c.Request.Context(), user.RegisterParams{
		FirstName:  payload.FirstName,
		MiddleName: payload.MiddleName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Password:   payload.Password,
		IsMerchant: payload.IsMerchant,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user":    u,
	})
}

// Post /api/login
func (api *UserAPI) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie("access_token", token, int(api.tokens.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user_id": u.ID,
		"role":    u.Role,
	})
}

// Get /api/users
func (api *UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.GetUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get /api/users/:userId
func (api *UserAPI) GetUserByID(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	u, err := api.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Get /api/userdata
func (api *UserAPI) CurrentUser(c *gin.Context) {
	userID, ok := httpctx.UserID(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "no token provided")
		return
	}

	u, err := api.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": u.Role, "email": u.Email})
}

// Put /api/users/:userId
func (api *UserAPI) UpdateProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var payload profilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := api.service.UpdateProfile(c.Request.Context(), user.UpdateProfileParams{
		UserID:     userID,
		FirstName:  payload.FirstName,
		MiddleName: payload.MiddleName,
		LastName:   payload.LastName,
		Email:      payload.Email,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User information updated successfully."})
}

// Put /api/users/:userId/password
// The password owner comes from the session token, not the path: nobody
// changes someone else's credentials.
func (api *UserAPI) ChangePassword(c *gin.Context) {
	userID, ok := httpctx.UserID(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := api.service.ChangePassword(c.Request.Context(), userID,
		payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}
