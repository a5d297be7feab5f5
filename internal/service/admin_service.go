package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/victoriaclean/backend/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// TokenConfig carries the signing material for admin tokens.
type TokenConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AdminService handles admin accounts and token issuance.
type AdminService struct {
	db     *gorm.DB
	tokens TokenConfig
}

// NewAdminService creates an AdminService instance.
func NewAdminService(gdb *gorm.DB, tokens TokenConfig) *AdminService {
	return &AdminService{db: gdb, tokens: tokens}
}

// AdminInput holds the signup fields.
type AdminInput struct {
	FullName string
	Email    string
	Password string
}

// Register creates a new admin account with a bcrypt-hashed password.
func (s *AdminService) Register(input AdminInput) (*db.Admin, error) {
	errs := ValidationError{}
	requireField(errs, "fullName", input.FullName, "Full name is required")
	requireField(errs, "email", input.Email, "Email is required")
	if _, ok := errs["email"]; !ok && !validEmail(input.Email) {
		errs["email"] = "Please fill a valid email address"
	}
	if len(strings.TrimSpace(input.Password)) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	var existing db.Admin
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(input.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := db.Admin{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Password: string(hashed),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &admin, nil
}

// Login checks credentials, stamps LastLogin and issues a token pair.
func (s *AdminService) Login(email, password string) (*db.Admin, TokenPair, error) {
	var admin db.Admin
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, fmt.Errorf("get admin: %w", err)
	}

	if !admin.ComparePassword(password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.generateTokens(&admin)
	if err != nil {
		return nil, TokenPair{}, err
	}

	now := time.Now()
	if err := s.db.Model(&admin).Update("last_login", now).Error; err != nil {
		return nil, TokenPair{}, fmt.Errorf("stamp last login: %w", err)
	}
	admin.LastLogin = &now

	return &admin, pair, nil
}

// Get fetches one admin by id.
func (s *AdminService) Get(id uint) (*db.Admin, error) {
	var admin db.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AdminService) ChangePassword(id uint, current, updated string) error {
	admin, err := s.Get(id)
	if err != nil {
		return err
	}

	if !admin.ComparePassword(current) {
		return ErrInvalidCredentials
	}
	if len(strings.TrimSpace(updated)) < 6 {
		return ValidationError{"newPassword": "Password must be at least 6 characters"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(updated)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.Model(admin).Update("password", string(hashed)).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// AccessTTL exposes the access token lifetime for cookie expiry.
func (s *AdminService) AccessTTL() time.Duration {
	return s.tokens.AccessTTL
}

// RefreshTTL exposes the refresh token lifetime for cookie expiry.
func (s *AdminService) RefreshTTL() time.Duration {
	return s.tokens.RefreshTTL
}

func (s *AdminService) generateTokens(admin *db.Admin) (TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(admin.ID), 10),
		"email": admin.Email,
		"role":  "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokens.AccessTTL).Unix(),
	})
	accessToken, err := access.SignedString([]byte(s.tokens.Secret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(admin.ID), 10),
		"iat": now.Unix(),
		"exp": now.Add(s.tokens.RefreshTTL).Unix(),
	})
	refreshToken, err := refresh.SignedString([]byte(s.tokens.RefreshSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
