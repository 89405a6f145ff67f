package processor

import (
	"context"
	"errors"
	"testing"

	mocks "github.com/cbodonnell/flotilla/mocks/github.com/cbodonnell/flotilla/pkg/repositories"
	"github.com/cbodonnell/flotilla/pkg/game"
	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/messages"
	"github.com/cbodonnell/flotilla/pkg/random"
	"github.com/cbodonnell/flotilla/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	alice types.PlayerID = "alice"
	bob   types.PlayerID = "bob"
)

func encode(t *testing.T, instruction messages.Instruction) []byte {
	t.Helper()
	b, err := messages.EncodeInstruction(instruction)
	require.NoError(t, err)
	return b
}

func signed(t *testing.T, caller types.PlayerID, instruction messages.Instruction) *Request {
	return &Request{
		Caller:   caller,
		IsSigner: true,
		Data:     encode(t, instruction),
	}
}

// hittingGameID finds a game id whose first turn shot from ship 0 hits.
func hittingGameID(t *testing.T) uint64 {
	t.Helper()
	for gameID := uint64(1); gameID < 10000; gameID++ {
		key := types.SessionKey(gameID)
		rng := random.FromKey(key[:])
		rng.Skip(uint32(2 * constants.ShipsPerPlayer))
		if rng.NextDouble() < constants.WeaponHitChance {
			return gameID
		}
	}
	t.Fatal("no game id found")
	return 0
}

func TestProcess_Game(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	p := NewProcessor(NewProcessorOptions{Repository: repo})
	gameID := hittingGameID(t)

	result, err := p.Process(ctx, signed(t, alice, &messages.JoinQueue{GameID: gameID}))
	require.NoError(t, err)
	assert.Nil(t, result.Session)
	assert.Equal(t, []types.PlayerID{alice}, result.Matchmaking.Queue)

	result, err = p.Process(ctx, signed(t, bob, &messages.JoinQueue{GameID: gameID}))
	require.NoError(t, err)
	require.NotNil(t, result.Session)
	assert.Equal(t, bob, result.Session.Player1)
	assert.Equal(t, alice, result.Session.Player2)
	assert.Empty(t, result.Matchmaking.Queue)
	assert.Equal(t, gameID, result.Matchmaking.ActiveGames[alice])
	assert.Equal(t, gameID, result.Matchmaking.ActiveGames[bob])

	_, err = p.Process(ctx, signed(t, bob, &messages.CommitManeuvers{GameID: gameID, Maneuvers: map[uint32]types.Maneuver{0: {Speed: 30}}}))
	require.NoError(t, err)
	result, err = p.Process(ctx, signed(t, alice, &messages.CommitManeuvers{GameID: gameID, Maneuvers: map[uint32]types.Maneuver{3: {Speed: 30}}}))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), result.Session.Phase)

	result, err = p.Process(ctx, signed(t, bob, &messages.FireWeapon{GameID: gameID, ShipID: 0, TargetID: 3}))
	require.NoError(t, err)
	require.NotNil(t, result.Fire)
	assert.True(t, result.Fire.Hit)
	assert.Equal(t, constants.ShipHealth-constants.WeaponDamage, result.Session.Ships[3].Health)
	assert.Equal(t, []uint32{0, 3}, result.Session.LastActionData)

	// the stored record matches what was returned
	record, err := repo.Load(ctx, types.SessionKey(gameID))
	require.NoError(t, err)
	stored, err := messages.DeserializeGameSession(record.Data)
	require.NoError(t, err)
	assert.Equal(t, result.Session, stored)

	result, err = p.Process(ctx, signed(t, alice, &messages.Upgrade{GameID: gameID, ShipID: 3, UpgradeID: game.UpgradeWeaponDamage}))
	require.NoError(t, err)
	assert.Equal(t, constants.WeaponDamage+constants.UpgradeWeaponDamage, result.Session.Ships[3].Weapon.Damage)

	result, err = p.Process(ctx, signed(t, bob, &messages.Skip{GameID: gameID, ShipID: 1}))
	require.NoError(t, err)
	assert.Equal(t, types.LastActionSkip, result.Session.LastAction)

	result, err = p.Process(ctx, signed(t, alice, &messages.CloseGame{GameID: gameID}))
	require.NoError(t, err)
	assert.Equal(t, bob, result.Session.WinningPlayer)
	assert.Empty(t, result.Matchmaking.ActiveGames)

	_, err = p.Process(ctx, signed(t, bob, &messages.Skip{GameID: gameID, ShipID: 2}))
	assert.ErrorIs(t, err, game.ErrGameFinished)
}

func TestProcess_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		req      func(t *testing.T) *Request
		wantErr  error
		wantKind game.RejectionKind
	}{
		{
			name: "not signed",
			req: func(t *testing.T) *Request {
				return &Request{Caller: alice, Data: encode(t, &messages.LeaveQueue{})}
			},
			wantErr:  game.ErrMissingSignature,
			wantKind: game.KindAuthorization,
		},
		{
			name: "wrong session key",
			req: func(t *testing.T) *Request {
				req := signed(t, alice, &messages.Skip{GameID: 1})
				req.SessionKey = types.SessionKey(2)
				return req
			},
			wantErr:  game.ErrInvalidKey,
			wantKind: game.KindAddressing,
		},
		{
			name: "unknown instruction",
			req: func(t *testing.T) *Request {
				return &Request{Caller: alice, IsSigner: true, Data: []byte{42}}
			},
			wantErr:  messages.ErrUnknownInstruction,
			wantKind: game.KindPrecondition,
		},
		{
			name: "empty instruction",
			req: func(t *testing.T) *Request {
				return &Request{Caller: alice, IsSigner: true}
			},
			wantErr:  messages.ErrEmptyInstruction,
			wantKind: game.KindPrecondition,
		},
		{
			name: "unpaired session",
			req: func(t *testing.T) *Request {
				return signed(t, alice, &messages.FireWeapon{GameID: 9, ShipID: 0, TargetID: 0})
			},
			wantErr:  game.ErrNotActivePlayer,
			wantKind: game.KindPrecondition,
		},
		{
			name: "close by stranger",
			req: func(t *testing.T) *Request {
				return signed(t, alice, &messages.CloseGame{GameID: 9})
			},
			wantErr:  game.ErrNotParticipant,
			wantKind: game.KindPrecondition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// any storage write fails the test
			repo := mocks.NewRepository(t)
			repo.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, &repositories.ErrNotFound{}).Maybe()

			p := NewProcessor(NewProcessorOptions{Repository: repo})
			_, err := p.Process(context.Background(), tt.req(t))
			require.ErrorIs(t, err, tt.wantErr)

			kind, ok := game.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestProcess_MatchingSessionKey(t *testing.T) {
	p := NewProcessor(NewProcessorOptions{Repository: repositories.NewInMemoryRepository()})

	req := signed(t, alice, &messages.JoinQueue{GameID: 4})
	req.SessionKey = types.SessionKey(4)
	_, err := p.Process(context.Background(), req)
	assert.NoError(t, err)
}

func TestProcess_StorageErrors(t *testing.T) {
	t.Run("load fails", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().Load(mock.Anything, types.MatchmakingKey()).Return(nil, errors.New("disk on fire")).Once()

		p := NewProcessor(NewProcessorOptions{Repository: repo})
		_, err := p.Process(context.Background(), signed(t, alice, &messages.LeaveQueue{}))
		require.Error(t, err)
		assert.False(t, game.IsRejection(err))
	})

	t.Run("store conflicts", func(t *testing.T) {
		key := types.MatchmakingKey()
		repo := mocks.NewRepository(t)
		repo.EXPECT().Load(mock.Anything, key).Return(nil, &repositories.ErrNotFound{Key: key}).Once()
		repo.EXPECT().Store(mock.Anything, key, mock.AnythingOfType("*repositories.Record")).
			Return(uint64(0), &repositories.ErrConflict{Key: key, Actual: 1}).Once()

		p := NewProcessor(NewProcessorOptions{Repository: repo})
		_, err := p.Process(context.Background(), signed(t, alice, &messages.JoinQueue{GameID: 1}))
		require.Error(t, err)
		assert.True(t, repositories.IsConflict(err))
		assert.False(t, game.IsRejection(err))
	})

	t.Run("corrupt record", func(t *testing.T) {
		key := types.SessionKey(3)
		repo := mocks.NewRepository(t)
		repo.EXPECT().Load(mock.Anything, key).Return(&repositories.Record{Version: 1, Data: []byte("junk")}, nil).Once()

		p := NewProcessor(NewProcessorOptions{Repository: repo})
		_, err := p.Process(context.Background(), signed(t, alice, &messages.Skip{GameID: 3}))
		assert.Error(t, err)
	})
}

func TestProcess_RejectionLeavesStorage(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	p := NewProcessor(NewProcessorOptions{Repository: repo})

	_, err := p.Process(ctx, signed(t, alice, &messages.JoinQueue{GameID: 5}))
	require.NoError(t, err)
	_, err = p.Process(ctx, signed(t, bob, &messages.JoinQueue{GameID: 5}))
	require.NoError(t, err)

	before, err := repo.Load(ctx, types.SessionKey(5))
	require.NoError(t, err)

	// alice is not the active player
	_, err = p.Process(ctx, signed(t, alice, &messages.Skip{GameID: 5, ShipID: 3}))
	require.ErrorIs(t, err, game.ErrNotActivePlayer)

	after, err := repo.Load(ctx, types.SessionKey(5))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
