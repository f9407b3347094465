package customer

// Tier is a loyalty bracket.
type Tier struct {
	Name               string
	MinPoints          int
	DiscountPercentage int
}

var tiers = []Tier{
	{Name: "Bronze", MinPoints: 0, DiscountPercentage: 0},
	{Name: "Silver", MinPoints: 100, DiscountPercentage: 5},
	{Name: "Gold", MinPoints: 500, DiscountPercentage: 10},
	{Name: "Platinum", MinPoints: 1000, DiscountPercentage: 15},
}

// Tiers returns the tier table ordered by MinPoints.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the highest tier whose threshold is at most points.
// Negative balances fall into the lowest tier.
func TierFor(points int) Tier {
	current := tiers[0]
	for _, t := range tiers {
		if points >= t.MinPoints {
			current = t
		}
	}
	return current
}

// NextTier returns the first tier above points, or false at the top.
func NextTier(points int) (Tier, bool) {
	for _, t := range tiers {
		if t.MinPoints > points {
			return t, true
		}
	}
	return Tier{}, false
}

// PointsFor converts a paid amount into loyalty points: one point per 100 units.
func PointsFor(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount / 100)
}
