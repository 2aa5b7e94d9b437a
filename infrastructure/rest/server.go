// Package rest serves the account, contact and history API next to the
// websocket endpoint.
package rest

import (
	"chat-hub/auth"
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/services"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	authService    services.IAuthService
	contactService services.IContactService
	historyService services.IHistoryService
	verifier       contract.TokenVerifier
	log            *slog.Logger
}

func NewServer(log *slog.Logger, authService services.IAuthService, contactService services.IContactService,
	historyService services.IHistoryService, verifier contract.TokenVerifier) *Server {
	return &Server{
		authService:    authService,
		contactService: contactService,
		historyService: historyService,
		verifier:       verifier,
		log:            log,
	}
}

// Routes mounts the REST endpoints on mux. extra handlers, such as the
// websocket endpoint and /metrics, are mounted by the caller.
func (s *Server) Routes(mux *http.ServeMux) {
	protected := auth.Middleware(s.verifier)

	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.Handle("GET /users/me", protected(http.HandlerFunc(s.me)))
	mux.Handle("POST /contacts", protected(http.HandlerFunc(s.addContact)))
	mux.Handle("GET /contacts", protected(http.HandlerFunc(s.listContacts)))
	mux.Handle("GET /messages", protected(http.HandlerFunc(s.messages)))
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registered struct {
	ID        domain.UserID `json:"id"`
	Username  string        `json:"username"`
	CreatedAt time.Time     `json:"created_at"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !s.decode(w, r, &body) {
		return
	}
	user, err := s.authService.Register(body.Username, body.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, registered{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !s.decode(w, r, &body) {
		return
	}
	token, err := s.authService.Login(body.Username, body.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, token)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	profile, err := s.authService.Me(userID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, profile)
}

type contactRequest struct {
	ContactID domain.UserID `json:"contact_id"`
}

func (s *Server) addContact(w http.ResponseWriter, r *http.Request) {
	var body contactRequest
	if !s.decode(w, r, &body) {
		return
	}
	if body.ContactID == "" {
		http.Error(w, "contact_id is required", http.StatusBadRequest)
		return
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	view, err := s.contactService.Add(userID, body.ContactID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, view)
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	views, err := s.contactService.List(userID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, views)
}

func (s *Server) messages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	contactID := domain.UserID(query.Get("contact_id"))
	if contactID == "" {
		http.Error(w, "contact_id is required", http.StatusBadRequest)
		return
	}
	var cursor *string
	if c := query.Get("cursor"); c != "" {
		cursor = &c
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	page, err := s.historyService.Conversation(userID, contactID, cursor)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, page)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("Response not written", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := toHTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func toHTTPStatus(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrInvalidUsername),
		stderrors.Is(err, errors.ErrSelfContact),
		stderrors.Is(err, errors.ErrContactAlreadyExists):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrInvalidCredentials),
		stderrors.Is(err, errors.ErrInvalidToken):
		return http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrUserNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
