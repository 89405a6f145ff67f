package game

import (
	"testing"

	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinQueue(t *testing.T) {
	tests := []struct {
		name        string
		queue       []types.PlayerID
		caller      types.PlayerID
		wantQueue   []types.PlayerID
		wantSession bool
		wantPlayer2 types.PlayerID
	}{
		{
			name:      "empty queue",
			queue:     []types.PlayerID{},
			caller:    alice,
			wantQueue: []types.PlayerID{alice},
		},
		{
			name:        "pairs with head",
			queue:       []types.PlayerID{alice},
			caller:      bob,
			wantQueue:   []types.PlayerID{},
			wantSession: true,
			wantPlayer2: alice,
		},
		{
			name:        "removes duplicates of the opponent",
			queue:       []types.PlayerID{alice, eve, alice},
			caller:      bob,
			wantQueue:   []types.PlayerID{eve},
			wantSession: true,
			wantPlayer2: alice,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := types.NewMatchmakingState()
			state.Queue = tt.queue

			next, session := JoinQueue(state, tt.caller, 7)
			assert.Equal(t, tt.wantQueue, next.Queue)
			assert.Equal(t, tt.queue, state.Queue, "input state must not change")

			if !tt.wantSession {
				assert.Nil(t, session)
				assert.Empty(t, next.ActiveGames)
				return
			}

			require.NotNil(t, session)
			assert.Equal(t, tt.caller, session.Player1)
			assert.Equal(t, tt.wantPlayer2, session.Player2)
			assert.Equal(t, uint64(7), next.ActiveGames[tt.caller])
			assert.Equal(t, uint64(7), next.ActiveGames[tt.wantPlayer2])
		})
	}
}

func TestJoinQueue_NewSession(t *testing.T) {
	state := types.NewMatchmakingState()
	state, session := JoinQueue(state, alice, 3)
	require.Nil(t, session)
	assert.Equal(t, []types.PlayerID{alice}, state.Queue)

	state, session = JoinQueue(state, bob, 3)
	require.NotNil(t, session)
	assert.Empty(t, state.Queue)

	assert.Equal(t, uint64(3), session.GameID)
	assert.Equal(t, bob, session.Player1)
	assert.Equal(t, alice, session.Player2)
	assert.Equal(t, bob, session.ActivePlayer)
	assert.Equal(t, types.NoPlayer, session.WinningPlayer)
	assert.Equal(t, uint32(1), session.Turn)
	assert.Equal(t, uint32(0), session.Phase)
	require.Len(t, session.Ships, 6)

	for i, ship := range session.Ships {
		assert.Equal(t, uint32(i), ship.ID)
		assert.Equal(t, constants.ShipHealth, ship.Health)
		assert.Equal(t, types.Maneuver{}, ship.Maneuver)
		assert.False(t, ship.Activated)
		if i < 3 {
			assert.Equal(t, bob, ship.Owner)
			assert.Equal(t, 90.0, ship.Rotation)
			assert.Equal(t, -40.0, ship.Position.Y)
		} else {
			assert.Equal(t, alice, ship.Owner)
			assert.Equal(t, -90.0, ship.Rotation)
			assert.Equal(t, 40.0, ship.Position.Y)
		}
		// fleets mirror each other
		assert.Equal(t, session.Ships[i%3].Position.X, ship.Position.X)
	}
}

func TestLeaveQueue(t *testing.T) {
	state := types.NewMatchmakingState()
	state.Queue = []types.PlayerID{alice, bob, alice}

	next := LeaveQueue(state, alice)
	assert.Equal(t, []types.PlayerID{bob}, next.Queue)

	again := LeaveQueue(next, alice)
	assert.Equal(t, next, again)

	empty := LeaveQueue(types.NewMatchmakingState(), eve)
	assert.Equal(t, types.NewMatchmakingState(), empty)
}

func TestCloseGame(t *testing.T) {
	tests := []struct {
		name       string
		winner     types.PlayerID
		caller     types.PlayerID
		wantWinner types.PlayerID
		wantErr    error
	}{
		{
			name:       "player1 concedes",
			caller:     bob,
			wantWinner: alice,
		},
		{
			name:       "player2 concedes",
			caller:     alice,
			wantWinner: bob,
		},
		{
			name:       "already decided",
			winner:     alice,
			caller:     alice,
			wantWinner: alice,
		},
		{
			name:    "outsider",
			caller:  eve,
			wantErr: ErrNotParticipant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := types.NewMatchmakingState()
			state.ActiveGames[alice] = 9
			state.ActiveGames[bob] = 9
			state.ActiveGames[eve] = 4

			session := NewFleetSession(9, bob, alice)
			session.WinningPlayer = tt.winner

			nextState, nextSession, err := CloseGame(state, session, tt.caller)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, state.ActiveGames, 3)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWinner, nextSession.WinningPlayer)
			assert.Equal(t, map[types.PlayerID]uint64{eve: 4}, nextState.ActiveGames)
			assert.Equal(t, tt.winner, session.WinningPlayer, "input session must not change")
		})
	}
}
