package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const contextKeyAccount contextKey = "account"

// issueToken signs an HS256 token for the account. Claims match what the
// hosted backend puts in its tokens so the client's inspector sees the same
// shape either way.
func (s *Server) issueToken(acc *account) (string, error) {
	now := s.nowTime()
	claims := jwtlib.MapClaims{
		"sub":   acc.ID,
		"name":  acc.Profile.Name,
		"email": acc.Profile.Email,
		"role":  acc.Profile.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
		"jti":   uuid.New().String(),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// requireAuth validates the Bearer token and injects the owning account
// into the request context. Anything short of a valid, unexpired token gets
// a 401 with a message body.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeMessage(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			writeMessage(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		parsed, err := jwtlib.Parse(parts[1], func(t *jwtlib.Token) (any, error) {
			if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		}, jwtlib.WithTimeFunc(s.nowTime))
		if err != nil || !parsed.Valid {
			writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		claims, ok := parsed.Claims.(jwtlib.MapClaims)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "invalid token claims")
			return
		}
		email, _ := claims["email"].(string)

		s.lock.RLock()
		acc, ok := s.accounts[email]
		s.lock.RUnlock()
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "unknown account")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyAccount, acc)
		next(w, r.WithContext(ctx))
	}
}

func accountFrom(r *http.Request) *account {
	acc, _ := r.Context().Value(contextKeyAccount).(*account)
	return acc
}
