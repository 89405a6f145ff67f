package game

import (
	"testing"

	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hitFor(hitChance float64) func(float64) bool {
	return func(draw float64) bool { return draw < hitChance }
}

func missFor(hitChance float64) func(float64) bool {
	return func(draw float64) bool { return draw >= hitChance }
}

func TestFireWeapon_EndToEnd(t *testing.T) {
	// the shot below is turn 1, ship 0 of 6
	gameID := findGameID(t, 1, 6, 0, hitFor(constants.WeaponHitChance))

	state := types.NewMatchmakingState()
	state, session := JoinQueue(state, alice, gameID)
	require.Nil(t, session)
	_, session = JoinQueue(state, bob, gameID)
	require.NotNil(t, session)
	require.Len(t, session.Ships, 6)
	assert.Equal(t, uint32(1), session.Turn)
	assert.Equal(t, uint32(0), session.Phase)
	assert.Equal(t, session.Player1, session.ActivePlayer)

	// close the distance so ship 3 is in front of ship 0 and in range
	session, err := CommitManeuvers(session, bob, map[uint32]types.Maneuver{0: {Speed: 30}})
	require.NoError(t, err)
	session, err = CommitManeuvers(session, alice, map[uint32]types.Maneuver{3: {Speed: 30}})
	require.NoError(t, err)
	require.Equal(t, uint32(1), session.Phase)

	damage := session.Ships[0].Weapon.Damage
	next, result, err := FireWeapon(session, types.SessionKey(gameID), bob, 0, 3)
	require.NoError(t, err)
	assert.True(t, result.Hit)
	assert.False(t, result.Destroyed)
	assert.Less(t, result.Draw, session.Ships[0].Weapon.HitChance)

	assert.Equal(t, session.Ships[3].Health-damage, next.Ships[3].Health)
	assert.Equal(t, types.LastActionFire, next.LastAction)
	assert.Equal(t, []uint32{0, 3}, next.LastActionData)
	assert.True(t, next.Ships[0].Activated)
	assert.False(t, next.Ships[3].Activated)
	assert.Equal(t, alice, next.ActivePlayer)

	// the input snapshot is untouched
	assert.Equal(t, constants.ShipHealth, session.Ships[3].Health)
	assert.False(t, session.Ships[0].Activated)
}

func TestFireWeapon_Miss(t *testing.T) {
	gameID := findGameID(t, 1, 4, 0, missFor(constants.WeaponHitChance))
	session := newDuel(gameID)

	next, result, err := FireWeapon(session, types.SessionKey(gameID), bob, 0, 2)
	require.NoError(t, err)
	assert.False(t, result.Hit)
	assert.Equal(t, constants.ShipHealth, next.Ships[2].Health)
	assert.True(t, next.Ships[0].Activated)
	assert.Equal(t, alice, next.ActivePlayer)
}

func TestFireWeapon_Deterministic(t *testing.T) {
	session := newDuel(21)
	key := types.SessionKey(21)

	a, resultA, err := FireWeapon(session, key, bob, 1, 3)
	require.NoError(t, err)
	b, resultB, err := FireWeapon(session, key, bob, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, resultA, resultB)
	assert.Equal(t, a, b)
	assert.Equal(t, drawFor(21, 1, 4, 1), resultA.Draw)
}

func TestFireWeapon_Destroys(t *testing.T) {
	gameID := findGameID(t, 1, 4, 0, hitFor(constants.WeaponHitChance))
	session := newDuel(gameID)
	session.Ships[2].Health = 30
	session.Ships[2].Maneuver = types.Maneuver{Angle: 10, Speed: 20}

	next, result, err := FireWeapon(session, types.SessionKey(gameID), bob, 0, 2)
	require.NoError(t, err)
	assert.True(t, result.Destroyed)

	target := next.Ships[2]
	assert.Equal(t, -10.0, target.Health, "health is not clamped")
	assert.True(t, target.Activated)
	assert.Equal(t, types.Maneuver{}, target.Maneuver)
	assert.False(t, next.IsFinished())
	assert.Equal(t, alice, next.ActivePlayer)
}

func TestFireWeapon_Victory(t *testing.T) {
	gameID := findGameID(t, 1, 4, 0, hitFor(constants.WeaponHitChance))
	session := newDuel(gameID)
	session.Ships[2].Health = 10
	session.Ships[3].Health = -5
	session.Ships[3].Activated = true

	next, _, err := FireWeapon(session, types.SessionKey(gameID), bob, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, bob, next.WinningPlayer)

	// a finished game accepts nothing but closure
	key := types.SessionKey(gameID)
	_, err = CommitManeuvers(next, alice, nil)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, _, err = FireWeapon(next, key, bob, 1, 2)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, err = Upgrade(next, bob, 1, UpgradeSpeed)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, err = Skip(next, bob, 1)
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestFireWeapon_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(session *types.GameSession)
		caller   types.PlayerID
		shipID   uint32
		targetID uint32
		wantErr  error
		wantKind RejectionKind
	}{
		{
			name:     "finished",
			setup:    func(s *types.GameSession) { s.WinningPlayer = alice },
			caller:   bob,
			targetID: 2,
			wantErr:  ErrGameFinished,
			wantKind: KindPrecondition,
		},
		{
			name:     "not active player",
			caller:   alice,
			shipID:   2,
			targetID: 0,
			wantErr:  ErrNotActivePlayer,
			wantKind: KindPrecondition,
		},
		{
			name:     "invalid target",
			caller:   bob,
			targetID: 4,
			wantErr:  ErrInvalidTarget,
			wantKind: KindPrecondition,
		},
		{
			name:     "invalid ship",
			caller:   bob,
			shipID:   9,
			targetID: 2,
			wantErr:  ErrInvalidShip,
			wantKind: KindPrecondition,
		},
		{
			name:     "not owner",
			caller:   bob,
			shipID:   3,
			targetID: 0,
			wantErr:  ErrNotOwner,
			wantKind: KindPrecondition,
		},
		{
			name:     "already activated",
			setup:    func(s *types.GameSession) { s.Ships[0].Activated = true },
			caller:   bob,
			targetID: 2,
			wantErr:  ErrShipActivated,
			wantKind: KindPrecondition,
		},
		{
			name:     "destroyed",
			setup:    func(s *types.GameSession) { s.Ships[0].Health = 0 },
			caller:   bob,
			targetID: 2,
			wantErr:  ErrShipDestroyed,
			wantKind: KindPrecondition,
		},
		{
			name:     "outside arc",
			caller:   bob,
			targetID: 1,
			wantErr:  ErrOutOfArc,
			wantKind: KindTargeting,
		},
		{
			name:     "outside range",
			setup:    func(s *types.GameSession) { s.Ships[2].Position = position(0, 50.5) },
			caller:   bob,
			targetID: 2,
			wantErr:  ErrOutOfRange,
			wantKind: KindTargeting,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newDuel(5)
			if tt.setup != nil {
				tt.setup(session)
			}
			before := session.Copy()

			next, result, err := FireWeapon(session, types.SessionKey(5), tt.caller, tt.shipID, tt.targetID)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, next)
			assert.Nil(t, result)
			assert.Equal(t, before, session)
			assert.True(t, IsRejection(err))

			kind, _ := KindOf(err)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestFireWeapon_EdgeOfRange(t *testing.T) {
	session := newDuel(5)
	session.Ships[2].Position = position(0, 50)

	_, _, err := FireWeapon(session, types.SessionKey(5), bob, 0, 2)
	assert.NoError(t, err)
}

func TestFireWeapon_NoHeal(t *testing.T) {
	// Play out a whole game of point blank fire and check that health never
	// goes back up.
	session := newDuel(77)
	key := types.SessionKey(77)

	for step := 0; step < 500 && !session.IsFinished(); step++ {
		before := session.Copy()
		active := session.ActivePlayer

		acted := false
		for i := range session.Ships {
			ship := session.Ships[i]
			if ship.Owner != active || ship.Activated || !ship.IsAlive() {
				continue
			}
			for j := range session.Ships {
				if session.Ships[j].Owner == active || !session.Ships[j].IsAlive() {
					continue
				}
				next, _, err := FireWeapon(session, key, active, ship.ID, uint32(j))
				if err != nil {
					continue
				}
				session = next
				acted = true
				break
			}
			if !acted {
				next, err := Skip(session, active, ship.ID)
				require.NoError(t, err)
				session = next
				acted = true
			}
			break
		}
		require.True(t, acted, "active player %s has nothing to do at step %d", active, step)

		for i := range session.Ships {
			assert.LessOrEqual(t, session.Ships[i].Health, before.Ships[i].Health)
		}
	}

	assert.True(t, session.IsFinished())
}
