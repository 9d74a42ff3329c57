// internal/mapper/mapper.go
package mapper

import (
	"github.com/shopspring/decimal"
)

// Pointer helpers shared by the per-entity mappers. DTOs carry pointer
// fields so merge-patch bodies can distinguish absent from zero.

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefDecimal(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
