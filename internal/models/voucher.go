package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherPrefix is the prefix for generated payment voucher numbers.
const VoucherPrefix = "SHLVR"

type PaymentVoucher struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	VoucherNo             string          `gorm:"uniqueIndex;size:20" json:"voucher_no"`
	Date                  time.Time       `gorm:"type:date;not null" json:"date"`
	PaidTo                string          `gorm:"size:200;not null" json:"paid_to"`
	Amount                decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Being                 string          `gorm:"type:text" json:"being"`
	PaidBy                string          `gorm:"size:20;not null" json:"paid_by"` // Cash / Cheque / Online
	BankDetails           string          `gorm:"size:200" json:"bank_details"`
	OnlinePaymentMode     string          `gorm:"size:100" json:"online_payment_mode"` // GPay / PhonePe / Paytm / UPI / NetBanking
	AuthorizedBy          string          `gorm:"size:200;not null" json:"authorized_by"`
	ReceiverSignatureName string          `gorm:"size:200" json:"receiver_signature_name"`
	ReceiverSignature     string          `gorm:"type:text" json:"receiver_signature"`
	CreatedAt             time.Time       `json:"created_at"`
}

func (PaymentVoucher) TableName() string {
	return "payment_vouchers"
}
