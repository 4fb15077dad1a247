package admin_login

import (
	"net/http"

	"github.com/Totaedandan/auame/internal/api/handlers"
)

const msgInvalidCredentials = "Неверный логин или пароль"

type AdminService interface {
	Verify(login, password string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Authenticated bool `json:"authenticated"`
}

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	if !h.service.Verify(req.Login, req.Password) {
		h.logger.Warn("POST /admin/login - Invalid credentials: login=%q", req.Login)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: login=%s", req.Login)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Authenticated: true})
}
