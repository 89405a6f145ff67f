package types

// MatchmakingState is the deployment-wide waiting list.
type MatchmakingState struct {
	// Queue holds waiting players in arrival order. Duplicates are kept.
	Queue []PlayerID `json:"queue"`
	// ActiveGames maps a player to the game id of their current session.
	ActiveGames map[PlayerID]uint64 `json:"activeGames"`
}

func NewMatchmakingState() *MatchmakingState {
	return &MatchmakingState{
		Queue:       []PlayerID{},
		ActiveGames: make(map[PlayerID]uint64),
	}
}

// Remove drops every occurrence of player from the queue.
func (m *MatchmakingState) Remove(player PlayerID) {
	queue := m.Queue[:0]
	for _, p := range m.Queue {
		if p != player {
			queue = append(queue, p)
		}
	}
	m.Queue = queue
}

// Copy returns a deep copy of the state.
func (m *MatchmakingState) Copy() *MatchmakingState {
	c := &MatchmakingState{
		Queue:       append([]PlayerID{}, m.Queue...),
		ActiveGames: make(map[PlayerID]uint64, len(m.ActiveGames)),
	}
	for player, gameID := range m.ActiveGames {
		c.ActiveGames[player] = gameID
	}
	return c
}
