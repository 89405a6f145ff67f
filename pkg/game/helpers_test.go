package game

import (
	"testing"

	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/kinematic"
	"github.com/cbodonnell/flotilla/pkg/random"
)

const (
	alice types.PlayerID = "alice"
	bob   types.PlayerID = "bob"
	eve   types.PlayerID = "eve"
)

// drawFor returns the draw a shot by shipID would get in gameID's session.
func drawFor(gameID uint64, turn, ships, shipID uint32) float64 {
	key := types.SessionKey(gameID)
	rng := random.FromKey(key[:])
	rng.Skip(turn*ships + shipID)
	return rng.NextDouble()
}

// findGameID searches for a game id whose draw for the given shot satisfies
// want, so tests can force a hit or a miss.
func findGameID(t *testing.T, turn, ships, shipID uint32, want func(draw float64) bool) uint64 {
	t.Helper()
	for gameID := uint64(1); gameID < 10000; gameID++ {
		if want(drawFor(gameID, turn, ships, shipID)) {
			return gameID
		}
	}
	t.Fatalf("no game id found for turn %d ship %d", turn, shipID)
	return 0
}

// newDuel returns a session with bob (player1) owning ships 0 and 1 and
// alice (player2) owning ships 2 and 3, placed so every ship has the
// opposing ship in front of it within range.
func newDuel(gameID uint64) *types.GameSession {
	session := NewFleetSession(gameID, bob, alice)
	session.Ships = []types.Ship{
		newShip(0, bob, 0, 0, 90),
		newShip(1, bob, 10, 0, 90),
		newShip(2, alice, 0, 20, -90),
		newShip(3, alice, 10, 20, -90),
	}
	return session
}

func position(x, y float64) kinematic.Vector {
	return kinematic.Vector{X: x, Y: y}
}
