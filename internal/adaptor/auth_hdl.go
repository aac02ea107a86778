package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"shop-portal/internal/dto/request"
	"shop-portal/internal/policy"
	"shop-portal/internal/usecase"
	"shop-portal/pkg/middleware"
	"shop-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const demoCookieName = "visited"

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /accounts/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register")
		return
	}

	h.setSessionCookie(w, auth.Token, auth.ExpiresAt)
	utils.ResponseCreated(w, "Account created successfully", auth)
}

// Login handles POST /accounts/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	h.setSessionCookie(w, auth.Token, auth.ExpiresAt)
	utils.ResponseSuccess(w, "Logged in successfully", auth)
}

// Logout handles POST /accounts/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(h.log, w, err, "logout")
		return
	}

	// Expire the browser cookie alongside the revoked session.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

// AboutMe handles GET /accounts/about-me
func (h *AuthHandler) AboutMe(w http.ResponseWriter, r *http.Request) {
	me, err := h.service.AboutMe(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "about me")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", me)
}

// GetUsers handles GET /accounts/users
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetProfile handles GET /accounts/profiles/{id}
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /accounts/profiles/{id}
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}

// SetSessionValue handles POST /accounts/session
func (h *AuthHandler) SetSessionValue(w http.ResponseWriter, r *http.Request) {
	var req request.SessionValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetSessionValue(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "set session value")
		return
	}

	utils.ResponseSuccess(w, "Session value stored", nil)
}

// GetSessionValue handles GET /accounts/session/{key}
func (h *AuthHandler) GetSessionValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Session key is required", nil)
		return
	}

	value, err := h.service.GetSessionValue(r.Context(), key)
	if err != nil {
		handleServiceError(h.log, w, err, "get session value")
		return
	}

	utils.ResponseSuccess(w, "Session value retrieved", value)
}

// SetCookie handles GET /accounts/cookie/set: a plain-cookie round trip
// kept separate from the session store.
func (h *AuthHandler) SetCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   demoCookieName,
		Value:  time.Now().Format(time.RFC3339),
		Path:   "/",
		MaxAge: 3600,
	})

	utils.ResponseSuccess(w, "Cookie set", nil)
}

// GetCookie handles GET /accounts/cookie/get
func (h *AuthHandler) GetCookie(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(demoCookieName)
	if err != nil {
		utils.ResponseNotFound(w, "Cookie not set")
		return
	}

	utils.ResponseSuccess(w, "Cookie retrieved", map[string]string{demoCookieName: cookie.Value})
}

// LoginPage handles GET /accounts/login: the target of anonymous-browser
// redirects. API clients authenticate via POST on the same path.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	id := policy.FromContext(r.Context())
	if id.IsAuthenticated() {
		utils.ResponseSuccess(w, "Already logged in", nil)
		return
	}

	utils.ResponseUnauthorized(w, "Please log in")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	if token == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
