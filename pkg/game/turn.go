package game

import (
	"github.com/cbodonnell/flotilla/pkg/game/types"
)

// checkActivation validates that caller may activate shipID right now.
// It is shared by every action sub-phase operation.
func checkActivation(session *types.GameSession, caller types.PlayerID, shipID uint32) error {
	if int(shipID) >= len(session.Ships) {
		return reject(KindPrecondition, ErrInvalidShip, "ship %d of %d", shipID, len(session.Ships))
	}

	ship := &session.Ships[shipID]
	if ship.Owner != caller {
		return reject(KindPrecondition, ErrNotOwner, "ship %d", shipID)
	}
	if ship.Activated {
		return reject(KindPrecondition, ErrShipActivated, "ship %d", shipID)
	}
	if !ship.IsAlive() {
		return reject(KindPrecondition, ErrShipDestroyed, "ship %d", shipID)
	}

	return nil
}

func checkActivePlayer(session *types.GameSession, caller types.PlayerID) error {
	if session.IsFinished() {
		return reject(KindPrecondition, ErrGameFinished, "game %d", session.GameID)
	}
	if caller == types.NoPlayer || caller != session.ActivePlayer {
		return reject(KindPrecondition, ErrNotActivePlayer, "game %d", session.GameID)
	}
	return nil
}

// advanceActivation moves the action sub-phase on after a ship has acted.
// When every living ship has acted the turn rolls over; otherwise play passes
// to the other player if they still have a ship to activate.
func advanceActivation(session *types.GameSession) {
	if allActivated(session) {
		session.Turn++
		session.Phase = 0
		session.ActivePlayer = session.Player1

		// destroyed ships stay activated so they are skipped for good
		for i := range session.Ships {
			if !session.Ships[i].IsAlive() {
				continue
			}
			session.Ships[i].Activated = false
		}
		return
	}

	other := session.Opponent(session.ActivePlayer)
	if session.HasReadyShip(other) {
		session.ActivePlayer = other
	}
}

// allActivated reports whether no living ship is left to act. Destroyed
// ships count as done even if they were never marked.
func allActivated(session *types.GameSession) bool {
	for i := range session.Ships {
		if session.Ships[i].IsAlive() && !session.Ships[i].Activated {
			return false
		}
	}
	return true
}

// checkVictory declares a winner if either fleet has been wiped out and
// returns true if the game is now over. Player1 losing is checked first.
func checkVictory(session *types.GameSession) bool {
	if !session.HasLivingShip(session.Player1) {
		session.WinningPlayer = session.Player2
		return true
	}
	if !session.HasLivingShip(session.Player2) {
		session.WinningPlayer = session.Player1
		return true
	}
	return false
}
