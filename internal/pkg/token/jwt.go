package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiry é a validade absoluta de um token emitido no login.
const DefaultExpiry = 2 * time.Hour

// ErrMissingKey indica que a chave de assinatura não foi configurada.
var ErrMissingKey = errors.New("chave de assinatura JWT não configurada")

// Subject reúne os dados do usuário embutidos no token.
type Subject struct {
	UserID int64
	Email  string
	Nome   string
	Setor  string
}

// CustomClaims define as claims do MottuFind. O id do usuário vai em "sub".
type CustomClaims struct {
	Email string `json:"email"`
	Nome  string `json:"name"`
	Setor string `json:"setor"`
	jwt.RegisteredClaims
}

// UserID converte o "sub" de volta para o id numérico do usuário.
func (c *CustomClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Service emite e valida JWTs HS256 com issuer e audience fixos.
// É seguro para uso concorrente: não guarda estado mutável.
type Service struct {
	secretKey []byte
	issuer    string
	audience  string
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria o serviço de tokens. expiry <= 0 usa DefaultExpiry.
func NewService(secretKey, issuer, audience string, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		expiry:    expiry,
		now:       time.Now,
	}
}

// WithClock troca a fonte de tempo. Usado em testes de expiração.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GenerateToken cria um JWT assinado para o usuário.
func (s *Service) GenerateToken(sub Subject) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingKey
	}

	issuedAt := s.now()
	claims := CustomClaims{
		Email: sub.Email,
		Nome:  sub.Nome,
		Setor: sub.Setor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(sub.UserID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifica assinatura, issuer, audience e expiração e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	return claims, nil
}
