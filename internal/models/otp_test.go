package models_test

import (
	"testing"
	"time"

	"shorelux/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOTPFreshWithin(t *testing.T) {
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	record := &models.OTPVerification{CreatedAt: issued}

	assert.True(t, record.FreshWithin(5*time.Minute, issued.Add(4*time.Minute)))
	assert.True(t, record.FreshWithin(5*time.Minute, issued.Add(5*time.Minute)))
	assert.False(t, record.FreshWithin(5*time.Minute, issued.Add(5*time.Minute+time.Second)))
}
