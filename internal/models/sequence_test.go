package models_test

import (
	"testing"

	"shorelux/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNextSequenceNo(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		last   string
		want   string
	}{
		{"empty sequence starts at 001", models.InvoicePrefix, "", "SHLINV001"},
		{"increments", models.InvoicePrefix, "SHLINV041", "SHLINV042"},
		{"grows past three digits", models.InvoicePrefix, "SHLINV999", "SHLINV1000"},
		{"voucher prefix", models.VoucherPrefix, "SHLVR007", "SHLVR008"},
		{"staff prefix", models.StaffIDPrefix, "SHORELUXSTAFF012", "SHORELUXSTAFF013"},
		{"unparsable last restarts", models.InvoicePrefix, "garbage", "SHLINV001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.NextSequenceNo(tt.prefix, tt.last))
		})
	}
}
