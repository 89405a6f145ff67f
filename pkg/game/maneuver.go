package game

import (
	"math"
	"sort"

	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/kinematic"
)

// CommitManeuvers records caller's movement intent for the current maneuver
// sub-phase. Each player commits once; when the second player commits, every
// living ship moves and the phase advances.
//
// Intent is not checked against the ship's speed and angle limits.
func CommitManeuvers(session *types.GameSession, caller types.PlayerID, maneuvers map[uint32]types.Maneuver) (*types.GameSession, error) {
	if session.IsFinished() {
		return nil, reject(KindPrecondition, ErrGameFinished, "game %d", session.GameID)
	}
	if !session.IsParticipant(caller) {
		return nil, reject(KindPrecondition, ErrNotParticipant, "game %d", session.GameID)
	}
	if (caller == session.Player1 && session.Player1Ready) || (caller == session.Player2 && session.Player2Ready) {
		return nil, reject(KindPrecondition, ErrAlreadyCommitted, "game %d", session.GameID)
	}

	shipIDs := make([]uint32, 0, len(maneuvers))
	for shipID := range maneuvers {
		if int(shipID) >= len(session.Ships) {
			return nil, reject(KindPrecondition, ErrInvalidShip, "ship %d of %d", shipID, len(session.Ships))
		}
		if session.Ships[shipID].Owner != caller {
			return nil, reject(KindPrecondition, ErrNotOwner, "ship %d", shipID)
		}
		shipIDs = append(shipIDs, shipID)
	}
	sort.Slice(shipIDs, func(i, j int) bool { return shipIDs[i] < shipIDs[j] })

	next := session.Copy()
	for _, shipID := range shipIDs {
		next.Ships[shipID].Maneuver = maneuvers[shipID]
	}

	if caller == next.Player1 {
		next.Player1Ready = true
	} else {
		next.Player2Ready = true
	}

	if next.Player1Ready && next.Player2Ready {
		resolveManeuvers(next)
	}

	return next, nil
}

// resolveManeuvers moves every living ship by its intent, then opens the
// action sub-phase.
func resolveManeuvers(session *types.GameSession) {
	for i := range session.Ships {
		ship := &session.Ships[i]
		if !ship.IsAlive() {
			continue
		}

		MoveShip(ship)
		if OutOfBounds(ship.Position) {
			ship.Health = 0
			ship.Destroy()
		}
		ship.Maneuver = types.Maneuver{}
	}

	session.Player1Ready = false
	session.Player2Ready = false
	session.Phase++
	session.LastAction = types.LastActionNone
	session.LastActionData = []uint32{}

	// ships driven out of the arena can end the game
	checkVictory(session)
}

// MoveShip applies a ship's maneuver intent to its position and heading.
// A zero angle moves the ship straight ahead by its speed. Any other angle
// sweeps the ship along an arc whose radius shrinks as the angle grows.
func MoveShip(ship *types.Ship) {
	speed := ship.Maneuver.Speed
	angle := ship.Maneuver.Angle

	// a stationary ship has no turning radius
	if speed == 0 {
		return
	}

	if angle == 0 {
		ship.Position = ship.Position.Add(kinematic.Heading(ship.Rotation).Scale(speed))
		return
	}

	radius := speed / float64(angle/constants.ArcAngleScale*math.Pi)
	sweep := -float64(speed/float64(2*math.Pi*radius)) * 360

	right := kinematic.Heading(ship.Rotation + 90)
	centre := ship.Position.Subtract(right.Scale(radius))
	arm := ship.Position.Subtract(centre).Rotate(sweep)

	ship.Position = centre.Add(arm)
	ship.Rotation = ship.Rotation + sweep
}

// OutOfBounds returns true if position lies outside the arena.
func OutOfBounds(position kinematic.Vector) bool {
	return math.Abs(position.X) > constants.ArenaHalfWidth || math.Abs(position.Y) > constants.ArenaHalfHeight
}
