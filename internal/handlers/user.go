package handlers

import (
	"InventoryPro/internal/config"
	"InventoryPro/internal/middleware"
	"InventoryPro/internal/model"
	"InventoryPro/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и проверку сессии.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: s, Logger: logger, Config: cfg}
}

// SignupRequest — тело запроса регистрации.
type SignupRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO — представление пользователя в ответах. Пароль отсутствует.
type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AuthResponse — единый формат ответов auth-роутов.
type AuthResponse struct {
	Message string   `json:"message"`
	User    *UserDTO `json:"user,omitempty"`
}

func toDTO(u *model.User) *UserDTO {
	return &UserDTO{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Signup — POST /api/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.Service.Register(r.Context(), req.FullName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case service.IsValidation(err):
			writeJSON(w, http.StatusBadRequest, AuthResponse{Message: validationMessage(err)})
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, AuthResponse{Message: "Email already registered"})
		default:
			h.Logger.Errorw("signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Server error during signup"})
		}
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("set login cookie", "error", err)
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Server error during signup"})
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "Account created successfully",
		User:    toDTO(user),
	})
}

// Login — POST /api/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case service.IsValidation(err):
			writeJSON(w, http.StatusBadRequest, AuthResponse{Message: "Please enter email and password"})
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "Invalid password"})
		default:
			h.Logger.Errorw("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Server error during login"})
		}
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("set login cookie", "error", err)
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Server error during login"})
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    toDTO(user),
	})
}

// Me — GET /api/me: возвращает текущего пользователя по auth cookie.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "Not authenticated"})
		return
	}
	user, err := h.Service.GetByID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "Not authenticated"})
			return
		}
		h.Logger.Errorw("me lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Message: "Authenticated", User: toDTO(user)})
}

// Health — GET /api/health.
func (h *UserHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AuthResponse{Message: "Backend is running"})
}

// validationMessage переводит ошибку валидации в текст для пользователя.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, service.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, service.ErrCredsRequired):
		return "Please enter email and password"
	default:
		return "Please fill in all fields"
	}
}
