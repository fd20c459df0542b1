package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"librify/internal/chat"
	"librify/internal/config"
	"librify/internal/models"
	"librify/internal/providers"
	"librify/internal/storage"

	"github.com/google/uuid"
)

type chatService interface {
	Reply(ctx context.Context, message, userID string) string
}

type Server struct {
	cfg       config.Config
	db        *storage.DB
	chatRepo  *storage.ChatRepo
	notifRepo *storage.NotificationRepo
	chat      chatService
}

func NewServer(cfg config.Config) *Server {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		panic(err)
	}
	pm, err := providers.NewManager(cfg)
	if err != nil {
		panic(err)
	}
	return &Server{
		cfg:       cfg,
		db:        db,
		chatRepo:  storage.NewChatRepo(db),
		notifRepo: storage.NewNotificationRepo(db),
		chat:      chat.NewResolver(storage.NewCatalogRepo(db), storage.NewLoanRepo(db), pm.FirstLLMProvider()),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/notifications", s.handleNotifications)
	return withCORS(s.recoverPanic(s.rateLimit(mux)))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	userID := strings.TrimSpace(req.UserID)
	// The only status-level error the chat surface produces: everything else
	// comes back as a 200 with the failure folded into the reply text.
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"reply": chat.ReplyNotLoggedIn})
		return
	}

	reply := s.chat.Reply(r.Context(), req.Message, userID)

	s.logChat(r.Context(), userID, models.RoleUser, req.Message)
	s.logChat(r.Context(), userID, models.RoleAssistant, reply)

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// logChat appends to chat history best effort; a store failure must not cost
// the user their reply.
func (s *Server) logChat(ctx context.Context, userID, role, content string) {
	if s.chatRepo == nil || content == "" {
		return
	}
	err := s.chatRepo.InsertMessage(ctx, models.ChatMessage{
		MessageID: uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Content:   content,
	})
	if err != nil {
		log.Printf("chat history write failed user=%s role=%s err=%v", userID, role, err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("userId is required"))
		return
	}
	msgs, err := s.chatRepo.ListMessagesByUser(r.Context(), userID, s.cfg.HistoryLimit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("userId is required"))
		return
	}
	notifs, err := s.notifRepo.ListNotificationsByUser(r.Context(), userID, s.cfg.HistoryLimit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifs})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

func toAPIError(status int, err error) apiError {
	msg := "Request failed."
	code := "LB-API-4000"
	raw := ""
	if err != nil {
		raw = strings.ToLower(err.Error())
	}

	switch {
	case status >= 500:
		switch {
		case strings.Contains(raw, "relation") && strings.Contains(raw, "does not exist"):
			return apiError{
				Code:    "LB-DB-5001",
				Message: "Database schema is not initialized. Run migrations and retry.",
			}
		case strings.Contains(raw, "connect"), strings.Contains(raw, "dial tcp"), strings.Contains(raw, "connection refused"):
			return apiError{
				Code:    "LB-DB-5002",
				Message: "Database connection is unavailable. Check local services and retry.",
			}
		default:
			return apiError{
				Code:    "LB-API-5000",
				Message: "Internal server error. Please retry or check service logs.",
			}
		}
	case status == http.StatusBadRequest:
		code = "LB-API-4001"
		msg = "Invalid request. Check inputs and retry."
	case status == http.StatusNotFound:
		code = "LB-API-4004"
		msg = "Requested resource was not found."
	case status == http.StatusMethodNotAllowed:
		code = "LB-API-4005"
		msg = "This endpoint does not support the requested method."
	case status == http.StatusTooManyRequests:
		code = "LB-API-4029"
		msg = "Too many requests. Slow down and retry."
	}

	// For 4xx, keep user-safe validation context only.
	if status >= 400 && status < 500 && err != nil {
		low := strings.ToLower(err.Error())
		switch {
		case strings.Contains(low, "userid is required"):
			msg = "userId query parameter is required."
		case strings.Contains(low, "invalid json"):
			msg = "Malformed JSON request body."
		}
	}

	return apiError{Code: code, Message: msg}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
