package territory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardScale(t *testing.T) {
	base := Reward{Fuel: 10, Respect: 5, XP: 20}

	assert.Equal(t, base, base.Scale(1.0))

	// 5 * 1.5 rounds up to 8.
	assert.Equal(t, Reward{Fuel: 15, Respect: 8, XP: 30}, base.Scale(1.5))

	assert.Equal(t, Reward{}, Reward{}.Scale(1.5))
}

func TestRewardIssuerGrantReturnsGrantedAmounts(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(1, nil)
	user.FuelPoints = 100

	var granted Reward
	err := store.Transact(context.Background(), func(tx TxStore) error {
		var err error
		granted, err = RewardIssuer{}.Grant(tx, 1, Reward{Fuel: 10, Respect: 5, XP: 20}, 1.5)
		return err
	})

	assert.NoError(t, err)
	// Granted amounts, not new totals.
	assert.Equal(t, Reward{Fuel: 15, Respect: 8, XP: 30}, granted)
	assert.Equal(t, 115, store.users[1].FuelPoints)
	assert.Equal(t, 8, store.users[1].RespectPoints)
	assert.Equal(t, 30, store.users[1].XP)
}
