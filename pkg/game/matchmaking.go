package game

import (
	"github.com/cbodonnell/flotilla/pkg/game/types"
)

// JoinQueue adds caller to the matchmaking queue, or pairs them with the
// player at the head of the queue. When a pair is made both players are
// pointed at gameID and the new session is returned; otherwise the returned
// session is nil.
func JoinQueue(state *types.MatchmakingState, caller types.PlayerID, gameID uint64) (*types.MatchmakingState, *types.GameSession) {
	next := state.Copy()

	if len(next.Queue) == 0 {
		next.Queue = append(next.Queue, caller)
		return next, nil
	}

	opponent := next.Queue[0]
	next.Queue = next.Queue[1:]
	next.Remove(opponent)

	next.ActiveGames[caller] = gameID
	next.ActiveGames[opponent] = gameID

	return next, NewFleetSession(gameID, caller, opponent)
}

// LeaveQueue removes every queued entry for caller. Leaving while not queued
// is not an error.
func LeaveQueue(state *types.MatchmakingState, caller types.PlayerID) *types.MatchmakingState {
	next := state.Copy()
	next.Remove(caller)
	return next
}

// CloseGame ends a session on behalf of one of its players. Both players
// are released from their active game, and if the game was still undecided
// the other player is declared the winner.
func CloseGame(state *types.MatchmakingState, session *types.GameSession, caller types.PlayerID) (*types.MatchmakingState, *types.GameSession, error) {
	if !session.IsParticipant(caller) {
		return nil, nil, reject(KindPrecondition, ErrNotParticipant, "game %d", session.GameID)
	}

	nextState := state.Copy()
	delete(nextState.ActiveGames, session.Player1)
	delete(nextState.ActiveGames, session.Player2)

	nextSession := session.Copy()
	if !nextSession.IsFinished() {
		nextSession.WinningPlayer = nextSession.Opponent(caller)
	}

	return nextState, nextSession, nil
}
