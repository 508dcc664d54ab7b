package domain

import "fmt"

// Tier is the derived privilege level: normal < staff < superuser < owner.
type Tier int

const (
	TierNormal Tier = iota
	TierStaff
	TierSuperuser
	TierOwner
)

var tierNames = [...]string{"normal", "staff", "superuser", "owner"}

func (t Tier) String() string {
	if t < TierNormal || t > TierOwner {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// AtLeast reports whether t grants everything other does.
func (t Tier) AtLeast(other Tier) bool { return t >= other }

// ParseRoster maps a roster path segment ("users", "staff", "superusers",
// "owners") to its tier.
func ParseRoster(s string) (Tier, bool) {
	switch s {
	case "users":
		return TierNormal, true
	case "staff":
		return TierStaff, true
	case "superusers":
		return TierSuperuser, true
	case "owners":
		return TierOwner, true
	default:
		return 0, false
	}
}
