package domain

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Booking source values (who entered the booking).
const (
	BookingSourceStaff   = 0
	BookingSourceWebsite = 1
)

// Ledger source_type tags for the income-side records.
const (
	SourceBooking     = "booking"
	SourceSalesIncome = "salesincome"
	SourceOtherIncome = "otherincome"
)

// Expense categories as the frontend sends them.
const (
	ExpenseLaundry       = "Laundry"
	ExpenseCleaning      = "Cleaning"
	ExpenseMess          = "Mess"
	ExpenseCafeteria     = "Cafeteria"
	ExpenseRental        = "Rental"
	ExpenseSalary        = "Salary"
	ExpenseMiscellaneous = "Miscellaneous"
	ExpenseMaintenance   = "Maintenance"
	ExpenseCapital       = "Capital"
	ExpenseOther         = "Other Expenses"
)

// ExpenseSourceTags maps an expense category to the ledger source_type tag
// its entries are filed under.
var ExpenseSourceTags = map[string]string{
	ExpenseLaundry:       "laundryexpense",
	ExpenseCleaning:      "cleaningexpense",
	ExpenseMess:          "messexpense",
	ExpenseCafeteria:     "cafeteriaexpense",
	ExpenseRental:        "rentalexpense",
	ExpenseSalary:        "salaryexpense",
	ExpenseMiscellaneous: "miscexpense",
	ExpenseMaintenance:   "maintenanceexpense",
	ExpenseCapital:       "capitalexpense",
	ExpenseOther:         "otherexpense",
}

func IsExpenseCategory(category string) bool {
	_, ok := ExpenseSourceTags[category]
	return ok
}

// OTP verification purposes for gated edits.
const (
	OTPBookingEdit     = "booking_edit"
	OTPExpenseEdit     = "expense_edit"
	OTPSalesIncomeEdit = "sales_income_edit"
	OTPOtherIncomeEdit = "other_income_edit"
)

var OTPPurposes = []string{OTPBookingEdit, OTPExpenseEdit, OTPSalesIncomeEdit, OTPOtherIncomeEdit}

func IsOTPPurpose(p string) bool {
	for _, v := range OTPPurposes {
		if v == p {
			return true
		}
	}
	return false
}

// Payment voucher payment modes.
const (
	PaidByCash   = "Cash"
	PaidByCheque = "Cheque"
	PaidByOnline = "Online"
)
