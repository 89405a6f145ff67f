package types

// PlayerID is an opaque player identifier, typically the player's public key.
type PlayerID string

// NoPlayer marks an unset player slot, including a session nobody has won yet.
const NoPlayer PlayerID = ""

// LastAction tells observers what the most recent accepted operation was.
type LastAction uint32

const (
	// LastActionNone is also recorded when a maneuver sub-phase resolves.
	LastActionNone LastAction = iota
	LastActionFire
	LastActionUpgrade
	LastActionSkip
)

func (a LastAction) String() string {
	switch a {
	case LastActionNone:
		return "none"
	case LastActionFire:
		return "fire"
	case LastActionUpgrade:
		return "upgrade"
	case LastActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// GameSession is the full state of one match.
type GameSession struct {
	GameID  uint64   `json:"gameID"`
	Player1 PlayerID `json:"player1"`
	Player2 PlayerID `json:"player2"`

	// Ready flags for the maneuver sub-phase
	Player1Ready  bool     `json:"player1Ready"`
	Player2Ready  bool     `json:"player2Ready"`
	ActivePlayer  PlayerID `json:"activePlayer"`
	WinningPlayer PlayerID `json:"winningPlayer"`

	LastAction     LastAction `json:"lastAction"`
	LastActionData []uint32   `json:"lastActionData"`

	Turn  uint32 `json:"turn"`
	Phase uint32 `json:"phase"`
	Ships []Ship `json:"ships"`
}

// NewGameSession returns the unplayable session used for a game id that has
// not been paired yet.
func NewGameSession(gameID uint64) *GameSession {
	return &GameSession{
		GameID:         gameID,
		LastActionData: []uint32{},
		Turn:           1,
		Phase:          0,
		Ships:          []Ship{},
	}
}

// IsFinished returns true once a winner has been declared.
func (g *GameSession) IsFinished() bool {
	return g.WinningPlayer != NoPlayer
}

// IsParticipant returns true if player is one of the two paired players.
func (g *GameSession) IsParticipant(player PlayerID) bool {
	if player == NoPlayer {
		return false
	}
	return player == g.Player1 || player == g.Player2
}

// Opponent returns the other participant.
func (g *GameSession) Opponent(player PlayerID) PlayerID {
	if player == g.Player1 {
		return g.Player2
	}
	return g.Player1
}

// HasLivingShip returns true if player owns at least one ship with health.
func (g *GameSession) HasLivingShip(player PlayerID) bool {
	for i := range g.Ships {
		if g.Ships[i].Owner == player && g.Ships[i].IsAlive() {
			return true
		}
	}
	return false
}

// HasReadyShip returns true if player owns a living ship that has not acted
// in the current action sub-phase.
func (g *GameSession) HasReadyShip(player PlayerID) bool {
	for i := range g.Ships {
		s := &g.Ships[i]
		if s.Owner == player && s.IsAlive() && !s.Activated {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the session.
func (g *GameSession) Copy() *GameSession {
	c := *g
	c.LastActionData = append([]uint32{}, g.LastActionData...)
	c.Ships = append([]Ship{}, g.Ships...)
	return &c
}
