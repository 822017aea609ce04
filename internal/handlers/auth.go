package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/middleware"
	"github.com/seogi1004/dental-al/internal/utils"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthHandler struct {
	Cfg  config.Config
	HTTP *http.Client
}

type loginRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

type googleUserinfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{
		Cfg:  cfg,
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges a Google OAuth access token for a session JWT. The
// Google token is verified against the userinfo endpoint and embedded in
// the session, since every Sheets call is made with the caller's own
// credential. Admin capability comes from the configured email allowlist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	info, err := h.fetchUserinfo(c.Request.Context(), req.AccessToken)
	if err != nil {
		log.Printf("google userinfo error: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google credential"})
		return
	}
	if info.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google account has no email"})
		return
	}

	email := strings.ToLower(info.Email)
	isAdmin := false
	for _, admin := range h.Cfg.AdminEmails() {
		if email == admin {
			isAdmin = true
			break
		}
	}

	token, err := utils.GenerateSessionToken(utils.SessionClaims{
		Email:       email,
		Name:        info.Name,
		Picture:     info.Picture,
		Admin:       isAdmin,
		GoogleToken: req.AccessToken,
	}, h.Cfg.JwtSecret, h.Cfg.JwtSessionHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"email":   email,
		"name":    info.Name,
		"picture": info.Picture,
		"isAdmin": isAdmin,
	})
}

// Me reports the current session's identity and capability.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email":   c.GetString(middleware.ContextEmail),
		"name":    c.GetString(middleware.ContextName),
		"isAdmin": c.GetBool(middleware.ContextIsAdmin),
	})
}

func (h *AuthHandler) fetchUserinfo(ctx context.Context, accessToken string) (googleUserinfo, error) {
	var info googleUserinfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return info, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := h.HTTP.Do(req)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return info, &userinfoError{status: resp.StatusCode, body: string(b)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, err
	}
	return info, nil
}

type userinfoError struct {
	status int
	body   string
}

func (e *userinfoError) Error() string {
	return fmt.Sprintf("userinfo status=%d body=%s", e.status, e.body)
}
