package handlers

import (
	"TodoAuth/internal/auth"
	"TodoAuth/internal/middleware"
	"TodoAuth/internal/model"
	"TodoAuth/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

const (
	msgAuthenticated = "Authentication successful"
	msgTokenValid    = "Token valid"
	msgTokenInvalid  = "Invalid token"
)

type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// CredentialsRequest: тело /register и /login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,bcryptlen"`
}

// TokenRequest: тело /token. Пустой или отсутствующий token не ошибка валидации,
// а такой же отказ, как и любой невалидный токен.
type TokenRequest struct {
	Token string `json:"token"`
}

// AuthResponse: ответ на успешную регистрацию или вход.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
	Message  string `json:"message"`
}

type TokenValidationResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "username already taken"})
			return
		}
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		writeInternalError(w)
		return
	}

	token, err := h.UserService.IssueToken(user.ID)
	if err != nil {
		h.Logger.Errorw("Register: issue token", "user_id", user.ID, "error", err)
		writeInternalError(w)
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, newAuthResponse(user, token))
}

// Login авторизация пользователя
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, token, err := h.UserService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Logger.Debugw("Login: rejected", "username", req.Username)
			middleware.WriteUnauthorized(w)
			return
		}
		h.Logger.Errorw("Login: service error", "username", req.Username, "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, newAuthResponse(user, token))
}

// ValidateToken проверяет токен из тела и существование его владельца.
func (h *UserHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.UserService.VerifyToken(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			writeJSON(w, http.StatusUnauthorized, TokenValidationResponse{Valid: false, Message: msgTokenInvalid})
			return
		}
		h.Logger.Errorw("ValidateToken: service error", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, TokenValidationResponse{
		Valid:    true,
		UserID:   user.ID,
		Username: user.Username,
		Message:  msgTokenValid,
	})
}

func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeRequest(w, r, dst)
	if err == nil {
		return true
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, verr)
		return false
	}
	h.Logger.Errorw("decode request", "uri", r.RequestURI, "error", err)
	writeInternalError(w)
	return false
}

func newAuthResponse(user *model.User, token string) AuthResponse {
	return AuthResponse{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
		Message:  msgAuthenticated,
	}
}
