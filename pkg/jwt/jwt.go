package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de validación, distinguibles con errors.Is. Ninguno es reintentable.
var (
	ErrInvalidSignature = errors.New("jwt: firma inválida")
	ErrExpired          = errors.New("jwt: token expirado")
	ErrMalformed        = errors.New("jwt: token malformado")
)

// DefaultTTL vigencia del token si no se configura otra: 24 horas, como
// define el contrato de login.
const DefaultTTL = 24 * time.Hour

// Claims claims estándar JWT; el subject es el ID del usuario autenticado.
type Claims struct {
	jwt.RegisteredClaims
}

// Service emite y valida tokens firmados con HMAC-SHA256. El secreto se
// inyecta por constructor: no hay estado global ni fallback.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewService construye el servicio de tokens. Un secreto vacío es un error
// de configuración y se rechaza en el arranque.
func NewService(secret string, ttl time.Duration, issuer string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, issuer: issuer}, nil
}

// Issue genera un token firmado con subject = userID, iat = ahora y
// exp = ahora + TTL.
func (s *Service) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifica firma y expiración y devuelve el ID del subject.
// Retorna ErrExpired, ErrInvalidSignature o ErrMalformed según la falla.
func (s *Service) Validate(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		default:
			return 0, ErrMalformed
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrMalformed
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return userID, nil
}
