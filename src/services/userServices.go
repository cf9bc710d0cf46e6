package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserService authenticates against the static user table and issues
// signed role tokens.
type UserService struct {
	users  map[string]models.UserModel
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// RoleClaims is the payload of a login token.
type RoleClaims struct {
	Role models.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

// NewUserService builds the user table: one user per role, whose username and
// password are the role name.
func NewUserService(secret string, ttl time.Duration) (*UserService, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	s := &UserService{
		users:  make(map[string]models.UserModel, len(models.Roles)),
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, role := range models.Roles {
		hash, err := bcrypt.GenerateFromPassword([]byte(role), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		name := string(role)
		s.users[name] = models.UserModel{
			Username:     name,
			PasswordHash: string(hash),
			Name:         strings.ToUpper(name[:1]) + name[1:],
			Role:         role,
		}
	}
	return s, nil
}

// AuthenticateUser checks credentials and returns the user with a signed token
func (s *UserService) AuthenticateUser(username, password string) (*models.LoginResponse, error) {
	user, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Name: user.Name, Role: user.Role, Token: token}, nil
}

// IssueToken signs an HS256 token carrying the user's role.
func (s *UserService) IssueToken(user models.UserModel) (string, error) {
	now := s.now()
	claims := RoleClaims{
		Role: user.Role,
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature, expiry and role of a token.
func (s *UserService) VerifyToken(tokenString string) (models.Role, error) {
	claims := &RoleClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	role, ok := models.ParseRole(string(claims.Role))
	if !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return role, nil
}
