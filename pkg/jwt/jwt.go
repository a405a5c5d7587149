package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientType distinguishes token lifetimes: browser dashboard sessions are
// short, mobile client sessions long-lived.
type ClientType string

const (
	WebClient    ClientType = "web"
	MobileClient ClientType = "mobile"
)

// Claims represents the JWT claims structure
type Claims struct {
	EmployeeID int64      `json:"id"`
	Email      string     `json:"email"`
	IsAdmin    bool       `json:"is_admin"`
	ClientType ClientType `json:"client_type"`
	jwt.RegisteredClaims
}

// Service handles JWT operations
type Service struct {
	secret       string
	webExpiry    time.Duration
	mobileExpiry time.Duration
}

// NewService creates a new JWT service
func NewService(secret string, webExpiry, mobileExpiry time.Duration) *Service {
	return &Service{
		secret:       secret,
		webExpiry:    webExpiry,
		mobileExpiry: mobileExpiry,
	}
}

// GenerateToken generates a signed token for an employee. The expiry is
// chosen from the client type.
func (s *Service) GenerateToken(employeeID int64, email string, isAdmin bool, client ClientType) (string, error) {
	expiry := s.webExpiry
	if client == MobileClient {
		expiry = s.mobileExpiry
	}

	now := time.Now()
	claims := Claims{
		EmployeeID: employeeID,
		Email:      email,
		IsAdmin:    isAdmin,
		ClientType: client,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "employee-monitoring",
			Subject:   fmt.Sprintf("%d", employeeID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates signature and expiry and parses the claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// ExtractClaims extracts claims from a token without validation
func (s *Service) ExtractClaims(tokenString string) (*Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// IsTokenExpired checks if a token is expired
func (s *Service) IsTokenExpired(tokenString string) bool {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		return true
	}

	return claims.ExpiresAt.Time.Before(time.Now())
}
