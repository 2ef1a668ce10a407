package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// refreshCookie is the httpOnly cookie carrying the refresh token. It is
// scoped to the auth endpoints so it never rides along on API calls.
const (
	refreshCookie     = "memograph_refresh"
	refreshCookiePath = "/api/v1/auth"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginHandler handles POST /api/v1/auth/login.
func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := s.deps.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	s.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, pair)
}

// refreshHandler handles POST /api/v1/auth/refresh. The refresh token
// comes from the cookie, with a JSON body fallback for non-browser
// clients.
func (s *Server) refreshHandler(c *gin.Context) {
	token := s.refreshTokenFrom(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	pair, err := s.deps.Auth.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	s.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, pair)
}

// logoutHandler handles POST /api/v1/auth/logout.
func (s *Server) logoutHandler(c *gin.Context) {
	if token := s.refreshTokenFrom(c); token != "" {
		if err := s.deps.Auth.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(refreshCookie, "", -1, refreshCookiePath, "", true, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// logoutAllHandler handles POST /api/v1/auth/logout-all. Unlike logout it
// requires a valid refresh token, since it tears down every session.
func (s *Server) logoutAllHandler(c *gin.Context) {
	token := s.refreshTokenFrom(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}
	if err := s.deps.Auth.LogoutAll(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(refreshCookie, "", -1, refreshCookiePath, "", true, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out everywhere"})
}

func (s *Server) refreshTokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(refreshCookie); err == nil && token != "" {
		return token
	}
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

func (s *Server) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, token, 0, refreshCookiePath, "", true, true)
}
