package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/internal/utils"
	"github.com/solecraft/client-go/users"
)

// RegisterAccount creates an account directly, bypassing the HTTP surface.
// Tests and seeding use it.
func (s *Server) RegisterAccount(profile users.Profile, password string) error {
	hash, err := users.HashPassword(password)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.accounts[profile.Email] = &account{
		ID:           uuid.New().String(),
		Profile:      profile,
		PasswordHash: hash,
	}
	return nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.RLock()
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	s.lock.RUnlock()
	if !ok || !users.CheckPasswordHash(req.Password, acc.PasswordHash) {
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.issueToken(acc)
	if err != nil {
		s.log.Err(err).Msg("token issuance failed")
		writeMessage(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, api.AuthResponse{
		Success: true,
		Token:   token,
		User:    utils.Ptr(acc.Profile),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := api.NewValidator().ValidateRegistration(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.lock.Lock()
	if _, exists := s.accounts[email]; exists {
		s.lock.Unlock()
		writeMessage(w, http.StatusConflict, "an account with this email already exists")
		return
	}
	s.lock.Unlock()

	profile := users.Profile{
		Name:  req.Name,
		Email: email,
		Phone: req.Phone,
		Role:  string(users.RoleCustomer),
	}
	if err := s.RegisterAccount(profile, req.Password); err != nil {
		s.log.Err(err).Msg("registration failed")
		writeMessage(w, http.StatusInternalServerError, "could not create account")
		return
	}

	s.lock.RLock()
	acc := s.accounts[email]
	s.lock.RUnlock()
	token, err := s.issueToken(acc)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, api.AuthResponse{
		Success: true,
		Token:   token,
		User:    utils.Ptr(acc.Profile),
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.VerifyResponse{Success: true})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := api.ForgotPasswordResponse{
		Success: true,
		Message: "if the email exists, a reset link has been sent",
	}
	s.lock.RLock()
	_, exists := s.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	s.lock.RUnlock()
	if exists {
		// No email delivery in the mock; hand the token back directly.
		resp.ResetToken = uuid.New().String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	writeJSON(w, http.StatusOK, api.ProfileResponse{Success: true, User: utils.Ptr(acc.Profile)})
}
