package fakeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
}

func newUserResponse(u *user) userResponse {
	return userResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		AccountNumber: u.AccountNumber,
	}
}

// handleRegister handles POST /api/auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var issues []validationIssue
	for field, v := range map[string]string{"name": req.Name, "email": req.Email, "password": req.Password} {
		if strings.TrimSpace(v) == "" {
			issues = append(issues, validationIssue{Type: "missing", Loc: []string{"body", field}, Msg: "Field required"})
		}
	}
	if len(issues) > 0 {
		writeIssues(w, issues)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		WriteDetail(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	u := &user{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         req.Phone,
		AccountNumber: req.AccountNumber,
		PasswordHash:  hash,
		CreatedAt:     s.now(),
	}
	if err := s.store.addUser(u); err != nil {
		if errors.Is(err, errEmailTaken) {
			WriteDetail(w, http.StatusBadRequest, "Email já cadastrado")
			return
		}
		WriteDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeToken(w, u)
}

// handleLogin handles POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	u, err := s.store.userByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		WriteDetail(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}

	s.writeToken(w, u)
}

func (s *Server) writeToken(w http.ResponseWriter, u *user) {
	token, err := s.signToken(u)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT")
		WriteDetail(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        newUserResponse(u),
	})
}

// signToken creates a signed HMAC-SHA256 JWT for the user.
func (s *Server) signToken(u *user) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"iss":   "fakeapi",
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// authenticate resolves the bearer token to a user id. A missing header is
// 403, a malformed or invalid token is 401. On failure detail holds the message.
func (s *Server) authenticate(r *http.Request) (userID string, status int, detail string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", http.StatusForbidden, "Not authenticated"
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", http.StatusForbidden, "Invalid authentication credentials"
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", http.StatusUnauthorized, "Token inválido"
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", http.StatusUnauthorized, "Token inválido"
	}
	return sub, http.StatusOK, ""
}
