package handlers

import (
	"net/http"
	"strings"

	"renobudget/internal/auth"
	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	users    *repository.Users
	sessions *repository.Sessions
	secret   []byte
}

func NewAuth(users *repository.Users, sessions *repository.Sessions, secret []byte) *Auth {
	return &Auth{users: users, sessions: sessions, secret: secret}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(req.Email, "@") {
		jsonError(c, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(req.Password) < 6 {
		jsonError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	if _, err := h.users.FindByEmail(req.Email); err == nil {
		jsonError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		failed(c, err, "create user")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := h.users.Create(&user); err != nil {
		failed(c, err, "create user")
		return
	}

	// a fresh signup owns a single session
	_ = h.sessions.DeleteForUser(user.ID)

	if err := h.startSession(c, user.ID); err != nil {
		failed(c, err, "create session")
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	_ = h.sessions.PurgeExpired()

	if err := h.startSession(c, user.ID); err != nil {
		failed(c, err, "create session")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout deletes the session row behind the cookie, which invalidates the
// token server-side, then clears the cookie. Always succeeds.
func (h *Auth) Logout(c *gin.Context) {
	if raw, err := c.Cookie(auth.SessionCookie); err == nil {
		if sessionID, _, err := auth.ParseToken(h.secret, raw); err == nil {
			_ = h.sessions.Delete(sessionID)
		}
	}
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Auth) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *Auth) startSession(c *gin.Context, userID uint) error {
	sess, err := h.sessions.Create(userID, auth.SessionTTL)
	if err != nil {
		return err
	}
	token, err := auth.SignToken(h.secret, sess.ID, userID, sess.ExpiresAt)
	if err != nil {
		return err
	}
	auth.SetSessionCookie(c, token)
	return nil
}
