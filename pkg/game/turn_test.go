package game

import (
	"testing"

	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivation_Alternates(t *testing.T) {
	session := newDuel(1)
	session.Phase = 1

	steps := []struct {
		caller     types.PlayerID
		shipID     uint32
		wantActive types.PlayerID
	}{
		{caller: bob, shipID: 0, wantActive: alice},
		{caller: alice, shipID: 2, wantActive: bob},
		{caller: bob, shipID: 1, wantActive: alice},
	}
	for _, step := range steps {
		next, err := Skip(session, step.caller, step.shipID)
		require.NoError(t, err)
		assert.Equal(t, step.wantActive, next.ActivePlayer)
		assert.Equal(t, uint32(1), next.Turn)
		session = next
	}

	// the last ready ship rolls the turn over
	next, err := Skip(session, alice, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), next.Turn)
	assert.Equal(t, uint32(0), next.Phase)
	assert.Equal(t, bob, next.ActivePlayer)
	for _, ship := range next.Ships {
		assert.False(t, ship.Activated, "ship %d", ship.ID)
	}
}

func TestActivation_StaysWhenOpponentIsDone(t *testing.T) {
	session := newDuel(1)
	session.Ships[2].Activated = true
	session.Ships[3].Activated = true

	next, err := Skip(session, bob, 0)
	require.NoError(t, err)
	assert.Equal(t, bob, next.ActivePlayer)
	assert.Equal(t, uint32(1), next.Turn)

	next, err = Skip(next, bob, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), next.Turn)
}

func TestActivation_DestroyedShipsStayActivated(t *testing.T) {
	session := newDuel(1)
	// a ship left at exactly zero health was never marked activated
	session.Ships[3].Health = 0

	next, err := Skip(session, bob, 0)
	require.NoError(t, err)
	next, err = Skip(next, alice, 2)
	require.NoError(t, err)
	next, err = Skip(next, bob, 1)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), next.Turn)
	assert.False(t, next.Ships[3].Activated)
	assert.False(t, next.Ships[0].Activated)

	next.ActivePlayer = alice
	_, err = Skip(next, alice, 3)
	assert.ErrorIs(t, err, ErrShipDestroyed)
}

func TestCheckVictory(t *testing.T) {
	tests := []struct {
		name       string
		dead       []uint32
		wantWinner types.PlayerID
		wantOver   bool
	}{
		{name: "both fleets alive"},
		{name: "player2 wiped", dead: []uint32{2, 3}, wantWinner: bob, wantOver: true},
		{name: "player1 wiped", dead: []uint32{0, 1}, wantWinner: alice, wantOver: true},
		{name: "both wiped", dead: []uint32{0, 1, 2, 3}, wantWinner: alice, wantOver: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newDuel(1)
			for _, id := range tt.dead {
				session.Ships[id].Health = -1
			}

			assert.Equal(t, tt.wantOver, checkVictory(session))
			assert.Equal(t, tt.wantWinner, session.WinningPlayer)
		})
	}
}
