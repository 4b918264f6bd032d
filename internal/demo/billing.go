package demo

import "strings"

// BillingCycle is the pricing toggle state. It only changes which toggle
// button is highlighted, prices stay the same.
type BillingCycle string

const (
	Monthly BillingCycle = "monthly"
	Annual  BillingCycle = "annual"
)

// ParseBillingCycle maps anything other than "annual" (or "yearly") to Monthly.
func ParseBillingCycle(s string) BillingCycle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annual", "yearly":
		return Annual
	}
	return Monthly
}

func (b BillingCycle) String() string { return string(b) }
