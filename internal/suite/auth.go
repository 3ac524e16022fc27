package suite

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bobmcallan/timcheck/internal/clients/backend"
	"github.com/bobmcallan/timcheck/internal/models"
)

// AlreadyRegisteredMarker is the backend's message for a duplicate registration.
const AlreadyRegisteredMarker = "já cadastrado"

// Authenticate registers the test user, falling back to login when the account
// already exists, and returns the bearer token.
func (s *Suite) Authenticate(ctx context.Context) (models.AuthToken, error) {
	log := s.logger.With().Str("check", models.CheckAuth).Logger()

	resp, err := s.client.Register(ctx, s.user)
	if err != nil {
		return "", fmt.Errorf("registration request: %w", err)
	}
	log.Info().Int("status", resp.StatusCode).Msg("Registration response")

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		token, err := backend.DecodeToken(resp)
		if err != nil {
			return "", fmt.Errorf("registration: %w", err)
		}
		log.Info().Str("email", s.user.Email).Msg("User registration successful")
		s.inspectToken(token)
		return token, nil

	case resp.StatusCode == http.StatusBadRequest && strings.Contains(string(resp.Body), AlreadyRegisteredMarker):
		log.Info().Str("email", s.user.Email).Msg("User already exists, trying login")
		return s.login(ctx)

	default:
		return "", fmt.Errorf("registration failed: %w", backend.Expect(resp, backend.PathRegister, http.StatusOK, http.StatusCreated))
	}
}

func (s *Suite) login(ctx context.Context) (models.AuthToken, error) {
	resp, err := s.client.Login(ctx, s.user.Login())
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	s.logger.Info().Str("check", models.CheckAuth).Int("status", resp.StatusCode).Msg("Login response")

	if err := backend.Expect(resp, backend.PathLogin, http.StatusOK); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	token, err := backend.DecodeToken(resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	s.logger.Info().Str("check", models.CheckAuth).Msg("User login successful")
	s.inspectToken(token)
	return token, nil
}

// inspectToken logs the unverified claims when the token happens to be a JWT.
// The token stays opaque to the checks; nothing here affects the outcome.
func (s *Suite) inspectToken(token models.AuthToken) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		s.logger.Debug().Msg("Bearer token is not a JWT")
		return
	}

	event := s.logger.Debug()
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		event = event.Str("sub", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		event = event.Time("exp", exp.Time).Dur("expires_in", time.Until(exp.Time).Round(time.Second))
	}
	event.Msg("Bearer token claims")
}
