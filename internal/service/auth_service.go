package service

import (
	"errors"
	"strconv"

	"shorelux/config"
	"shorelux/internal/auth"
	"shorelux/internal/models"
	"shorelux/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds  = errors.New("invalid username or password")
	ErrLoginDisabled = errors.New("login is not enabled for this account")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type AuthService struct {
	cfg       *config.Config
	staffRepo *repository.StaffRepository
}

func NewAuthService(cfg *config.Config, staffRepo *repository.StaffRepository) *AuthService {
	return &AuthService{cfg: cfg, staffRepo: staffRepo}
}

// Login accepts username or email plus password. Staff accounts must have
// can_login enabled by an admin and still be active employees.
func (s *AuthService) Login(usernameOrEmail, password string) (*models.Staff, string, string, error) {
	staff, err := s.staffRepo.GetByUsername(usernameOrEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		staff, err = s.staffRepo.GetByEmail(usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if !staff.CanLogin || !staff.IsActiveEmployee {
		return nil, "", "", ErrLoginDisabled
	}
	return s.issueTokens(staff)
}

// CreateStaff registers a new staff member (admin-driven). Password may be
// empty; such accounts cannot log in until an admin enables login with a
// password.
func (s *AuthService) CreateStaff(staff *models.Staff, password string) error {
	if _, err := s.staffRepo.GetByUsername(staff.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.staffRepo.GetByEmail(staff.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		staff.PasswordHash = string(hash)
	}
	return s.staffRepo.Create(staff)
}

// EnableLogin sets a password and turns on can_login.
func (s *AuthService) EnableLogin(staffID uint, password string) error {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff.PasswordHash = string(hash)
	staff.CanLogin = true
	return s.staffRepo.Update(staff)
}

func (s *AuthService) DisableLogin(staffID uint) error {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	staff.CanLogin = false
	return s.staffRepo.Update(staff)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*models.Staff, string, string, error) {
	claims, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return nil, "", "", err
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, "", "", auth.ErrInvalidToken
	}
	staff, err := s.staffRepo.GetByID(uint(id))
	if err != nil {
		return nil, "", "", auth.ErrInvalidToken
	}
	if !staff.CanLogin || !staff.IsActiveEmployee {
		return nil, "", "", ErrLoginDisabled
	}
	return s.issueTokens(staff)
}

func (s *AuthService) issueTokens(staff *models.Staff) (*models.Staff, string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, staff.ID, staff.Username, staff.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, staff.ID)
	if err != nil {
		return nil, "", "", err
	}
	return staff, access, refresh, nil
}
