// Package money implements the two-currency conversion rules.
//
// The register stores cop_to_ves: how many bolívares one peso buys.
// COP→VES is exact multiplication. VES→COP divides by the rate and rounds
// to the nearest integer peso — a deliberately lossy, one-directional rule
// applied identically at every call site (sales, payments, auditor), so a
// round trip is stable within 1 COP.
package money

import "github.com/shopspring/decimal"

// VesToCop converts a VES amount to integer COP using the given snapshot
// rate. A non-positive rate yields 0 — callers validate rates before
// persisting them, so this only guards against corrupted historical rows.
func VesToCop(ves decimal.Decimal, copToVes decimal.Decimal) int64 {
	if copToVes.Sign() <= 0 {
		return 0
	}
	return ves.Div(copToVes).Round(0).IntPart()
}

// CopToVes converts integer COP to VES. Exact: no rounding.
func CopToVes(cop int64, copToVes decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(cop).Mul(copToVes)
}

// TotalApplied is the COP value of a bi-currency amount pair:
// amountCop + round(amountVes / rate). Every balance and paid_cop mutation
// derives from this single function.
func TotalApplied(amountCop int64, amountVes decimal.Decimal, copToVes decimal.Decimal) int64 {
	return amountCop + VesToCop(amountVes, copToVes)
}
