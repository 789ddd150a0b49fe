package territory

import "math"

// Reward is a grant across the three independent balance counters.
type Reward struct {
	Fuel    int `json:"fuel"`
	Respect int `json:"respect"`
	XP      int `json:"xp"`
}

// Scale multiplies every counter by m, rounding to the nearest integer.
func (r Reward) Scale(m float64) Reward {
	return Reward{
		Fuel:    int(math.Round(float64(r.Fuel) * m)),
		Respect: int(math.Round(float64(r.Respect) * m)),
		XP:      int(math.Round(float64(r.XP) * m)),
	}
}

// RewardIssuer applies point grants to an actor's persistent balance.
type RewardIssuer struct{}

// Grant applies round(base * multiplier) to each of the actor's counters as
// a single atomic increment at the storage layer and returns the granted
// amounts (not the new totals). It must run inside the request transaction
// so a failed grant aborts the whole check-in or capture.
func (RewardIssuer) Grant(tx TxStore, actorID uint, base Reward, multiplier float64) (Reward, error) {
	granted := base.Scale(multiplier)
	if err := tx.AddPoints(actorID, granted); err != nil {
		return Reward{}, err
	}
	return granted, nil
}
