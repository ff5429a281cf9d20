package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"shorelux/internal/domain"
	"shorelux/internal/models"
	"shorelux/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUnknownPurpose  = errors.New("unknown verification type")
	ErrOTPNotFound     = errors.New("no pending OTP; request one first")
	ErrOTPMismatch     = errors.New("incorrect OTP")
	ErrOTPExpired      = errors.New("OTP expired, request a new one")
	ErrOTPNotVerified  = errors.New("OTP verification required")
	ErrVerificationOld = errors.New("OTP verification expired, verify again")
)

// OTPSender delivers a code to a staff member. Actual delivery (email/SMS)
// is an external service; LogSender stands in when none is configured.
type OTPSender interface {
	SendOTP(staff *models.Staff, code, purpose string) error
}

// LogSender writes codes to the process log instead of delivering them.
type LogSender struct{}

func (LogSender) SendOTP(staff *models.Staff, code, purpose string) error {
	log.Printf("[otp] code for %s (%s): %s", staff.Username, purpose, code)
	return nil
}

// OTPService gates sensitive edits (booking/expense/income updates) behind a
// short-lived one-time code.
type OTPService struct {
	otpRepo    *repository.OTPRepository
	staffRepo  *repository.StaffRepository
	sender     OTPSender
	ttl        time.Duration // how long a code is accepted after issue
	editWindow time.Duration // how long a verification unlocks edits
}

func NewOTPService(otpRepo *repository.OTPRepository, staffRepo *repository.StaffRepository, sender OTPSender, ttl, editWindow time.Duration) *OTPService {
	return &OTPService{otpRepo: otpRepo, staffRepo: staffRepo, sender: sender, ttl: ttl, editWindow: editWindow}
}

// Request issues a fresh 6-digit code for the given purpose and hands it to
// the sender.
func (s *OTPService) Request(staffID uint, purpose string) error {
	if !domain.IsOTPPurpose(purpose) {
		return ErrUnknownPurpose
	}
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	code, err := generateOTP()
	if err != nil {
		return err
	}
	record := &models.OTPVerification{
		StaffID:          staffID,
		OTP:              code,
		VerificationType: purpose,
	}
	if err := s.otpRepo.Create(record); err != nil {
		return err
	}
	return s.sender.SendOTP(staff, code, purpose)
}

// Verify checks the submitted code against the newest pending one.
func (s *OTPService) Verify(staffID uint, purpose, code string) error {
	if !domain.IsOTPPurpose(purpose) {
		return ErrUnknownPurpose
	}
	record, err := s.otpRepo.LatestUnverified(staffID, purpose)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotFound
		}
		return err
	}
	if !record.FreshWithin(s.ttl, time.Now()) {
		return ErrOTPExpired
	}
	if record.OTP != code {
		return ErrOTPMismatch
	}
	return s.otpRepo.MarkVerified(record)
}

// CheckVerified confirms the staff member verified an OTP for this purpose
// within the edit window. Edit endpoints call this before mutating.
func (s *OTPService) CheckVerified(staffID uint, purpose string) error {
	record, err := s.otpRepo.LatestVerified(staffID, purpose)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotVerified
		}
		return err
	}
	if !record.FreshWithin(s.editWindow, time.Now()) {
		return ErrVerificationOld
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
