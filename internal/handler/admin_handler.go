package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refresh_token"
	adminIDContextKey  = "__admin_id"
)

type signupPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Signup registers a new admin account.
func (a *API) Signup(c *gin.Context) {
	var payload signupPayload
	if !bindJSON(c, &payload) {
		return
	}

	admin, err := a.admins.Register(service.AdminInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		a.failure(c, err, "Unable to register admin")
		return
	}

	response.Created(c, admin)
}

// Login checks credentials, sets httpOnly token cookies and returns the
// tokens in the body for clients preferring the Authorization header.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload) {
		return
	}
	if strings.TrimSpace(payload.Email) == "" || strings.TrimSpace(payload.Password) == "" {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, tokens, err := a.admins.Login(payload.Email, payload.Password)
	if err != nil {
		a.failure(c, err, "Unable to login admin")
		return
	}

	secure := a.cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, tokens.AccessToken, int(a.admins.AccessTTL().Seconds()), "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, tokens.RefreshToken, int(a.admins.RefreshTTL().Seconds()), "/", "", secure, true)

	response.OK(c, gin.H{
		"id":           admin.ID,
		"fullName":     admin.FullName,
		"email":        admin.Email,
		"role":         "admin",
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// Logout clears the token cookies.
func (a *API) Logout(c *gin.Context) {
	secure := a.cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secure, true)
	response.Message(c, "Logged out successfully")
}

// Profile returns the authenticated admin.
func (a *API) Profile(c *gin.Context) {
	admin, err := a.admins.Get(currentAdminID(c))
	if err != nil {
		a.failure(c, err, "Unable to get admin details")
		return
	}
	response.OK(c, admin)
}

// ChangePassword verifies the current password and stores a new one.
func (a *API) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if !bindJSON(c, &payload) {
		return
	}
	if payload.CurrentPassword == "" || payload.NewPassword == "" {
		response.Error(c, http.StatusBadRequest, "Current password and new password are required")
		return
	}

	if err := a.admins.ChangePassword(currentAdminID(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		a.failure(c, err, "Unable to change password")
		return
	}
	response.Message(c, "Password changed successfully")
}

// AuthRequired validates the request's token, from the Authorization header
// or the access-token cookie, and stores the admin id in the context.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie(accessTokenCookie); err == nil {
				raw = cookie
			}
		}
		if raw == "" {
			response.Unauthorized(c, "You must be logged in to perform this action")
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "Invalid token claims")
			return
		}

		sub, _ := claims["sub"].(string)
		id, err := strconv.ParseUint(sub, 10, 32)
		if err != nil || id == 0 {
			response.Unauthorized(c, "Invalid token claims")
			return
		}

		c.Set(adminIDContextKey, uint(id))
		c.Next()
	}
}

func currentAdminID(c *gin.Context) uint {
	raw, exists := c.Get(adminIDContextKey)
	if !exists {
		return 0
	}
	id, _ := raw.(uint)
	return id
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
