package domain

import (
	"github.com/shopspring/decimal"
)

// MembershipLevel is the ordered customer classification driving the
// discount rate
type MembershipLevel string

const (
	MembershipBronze   MembershipLevel = "Bronze"
	MembershipSilver   MembershipLevel = "Silver"
	MembershipGold     MembershipLevel = "Gold"
	MembershipPlatinum MembershipLevel = "Platinum"
)

// ParseMembershipLevel converts a string into a MembershipLevel
func ParseMembershipLevel(s string) (MembershipLevel, error) {
	switch MembershipLevel(s) {
	case MembershipBronze, MembershipSilver, MembershipGold, MembershipPlatinum:
		return MembershipLevel(s), nil
	}
	return "", NewUnknownMembershipLevel(s)
}

// discountRates is the total mapping from membership level to discount
// rate. Levels outside the table fall back to zero.
var discountRates = map[MembershipLevel]decimal.Decimal{
	MembershipBronze:   decimal.RequireFromString("0.05"),
	MembershipSilver:   decimal.RequireFromString("0.10"),
	MembershipGold:     decimal.RequireFromString("0.15"),
	MembershipPlatinum: decimal.RequireFromString("0.20"),
}

// nextLevel is the upgrade ladder. Platinum has no successor.
var nextLevel = map[MembershipLevel]MembershipLevel{
	MembershipBronze: MembershipSilver,
	MembershipSilver: MembershipGold,
	MembershipGold:   MembershipPlatinum,
}
