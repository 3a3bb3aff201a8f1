package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// PlatformID identifica el tenant; CompanyID la empresa cliente del usuario (vacío
// para personal interno de la plataforma). Role permite RBAC sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	PlatformID string `json:"platform_id"`
	CompanyID  string `json:"company_id,omitempty"`
	Role       string `json:"role"` // ADMIN | STAFF | CLIENT | LOGISTICS
}

// AuthContext es el contexto de autorización que viaja en el token.
type AuthContext struct {
	UserID     string
	PlatformID string
	CompanyID  string
	Role       string
}

// Generate genera un token JWT firmado con el contexto de autorización completo.
func Generate(secret string, ac AuthContext, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   ac.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     ac.UserID,
		PlatformID: ac.PlatformID,
		CompanyID:  ac.CompanyID,
		Role:       ac.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el contexto de autorización.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (AuthContext, error) {
	if secret == "" {
		return AuthContext{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return AuthContext{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return AuthContext{}, fmt.Errorf("claims inválidos")
	}
	return AuthContext{
		UserID:     claims.UserID,
		PlatformID: claims.PlatformID,
		CompanyID:  claims.CompanyID,
		Role:       claims.Role,
	}, nil
}
