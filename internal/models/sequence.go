package models

import (
	"fmt"
	"strconv"
	"strings"
)

// NextSequenceNo computes the next number in a prefixed sequence
// (SHLINV001 -> SHLINV002). An empty or unparsable last value restarts the
// sequence at 001, matching how the invoice and voucher counters behave.
func NextSequenceNo(prefix, last string) string {
	n := 0
	if last != "" {
		if v, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			n = v
		}
	}
	return fmt.Sprintf("%s%03d", prefix, n+1)
}
