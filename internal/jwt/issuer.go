// Package jwt emite y valida los tokens de acceso del backend.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Issuer firma tokens HS256 con el secreto compartido de la aplicación.
// El subject es el email del usuario; el rol viaja en la claim "role".
type Issuer struct {
	Iss       string
	Secret    []byte
	AccessTTL time.Duration
}

func NewIssuer(iss, secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Issuer{Iss: iss, Secret: []byte(secret), AccessTTL: ttl}
}

// IssueAccess emite un token con email como sub y el rol como claim.
func (i *Issuer) IssueAccess(email, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := jwtv5.MapClaims{
		"iss":  i.Iss,
		"sub":  email,
		"role": role,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  exp.Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Errores de validación.
var (
	ErrInvalidToken = errors.New("invalid_jwt")
	ErrExpired      = errors.New("expired")
)

// Parse valida firma HS256, iss (si el issuer lo configura) y exp/nbf con
// 30s de tolerancia. Devuelve las claims como map[string]any.
func (i *Issuer) Parse(token string) (map[string]any, error) {
	tok, err := jwtv5.Parse(token, func(t *jwtv5.Token) (any, error) {
		return i.Secret, nil
	},
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithLeeway(30*time.Second),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if i.Iss != "" {
		if iss, _ := claims["iss"].(string); iss != i.Iss {
			return nil, ErrInvalidToken
		}
	}

	out := make(map[string]any, len(claims))
	for k, v := range claims {
		out[k] = v
	}
	return out, nil
}

// Subject extrae la claim sub (email) de un mapa de claims.
func Subject(claims map[string]any) string {
	s, _ := claims["sub"].(string)
	return s
}
