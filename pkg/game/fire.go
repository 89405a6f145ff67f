package game

import (
	"math"

	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/kinematic"
	"github.com/cbodonnell/flotilla/pkg/random"
	"github.com/google/uuid"
)

// FireResult describes how a shot resolved.
type FireResult struct {
	Draw      float64
	Hit       bool
	Destroyed bool
}

// FireWeapon has caller's ship shoot at target. Whether the shot hits comes
// from the session's random stream, positioned by the current turn and the
// shooter's id, so anyone replaying the game draws the same value.
//
// key is the session's storage key and seeds the stream.
func FireWeapon(session *types.GameSession, key uuid.UUID, caller types.PlayerID, shipID, targetID uint32) (*types.GameSession, *FireResult, error) {
	if err := checkActivePlayer(session, caller); err != nil {
		return nil, nil, err
	}
	if int(targetID) >= len(session.Ships) {
		return nil, nil, reject(KindPrecondition, ErrInvalidTarget, "target %d of %d", targetID, len(session.Ships))
	}
	if err := checkActivation(session, caller, shipID); err != nil {
		return nil, nil, err
	}

	ship := session.Ships[shipID]
	target := session.Ships[targetID]
	if err := checkTarget(&ship, &target); err != nil {
		return nil, nil, err
	}

	next := session.Copy()

	rng := random.FromKey(key[:])
	rng.Reset()
	rng.Skip(next.Turn*uint32(len(next.Ships)) + ship.ID)
	result := &FireResult{
		Draw: rng.NextDouble(),
	}

	hit := &next.Ships[targetID]
	if result.Draw < ship.Weapon.HitChance {
		result.Hit = true
		hit.Health -= ship.Weapon.Damage
	}
	if hit.Health < 0 {
		result.Destroyed = true
		hit.Destroy()
	}

	next.Ships[shipID].Activated = true
	next.LastAction = types.LastActionFire
	next.LastActionData = []uint32{shipID, targetID}

	if !checkVictory(next) {
		advanceActivation(next)
	}

	return next, result, nil
}

// checkTarget verifies target is inside the shooter's firing arc and range.
func checkTarget(ship, target *types.Ship) error {
	bearing := target.Position.Subtract(ship.Position)
	forward := kinematic.Heading(ship.Rotation)

	// AngleBetween is in [0, π] so Abs is a no-op here.
	angle := kinematic.Degrees(forward.AngleBetween(bearing))
	if math.Abs(angle) > ship.Weapon.Arc {
		return reject(KindTargeting, ErrOutOfArc, "ship %d to %d at %.2f degrees", ship.ID, target.ID, angle)
	}

	if bearing.SqrMagnitude() > float64(ship.Weapon.Range*ship.Weapon.Range) {
		return reject(KindTargeting, ErrOutOfRange, "ship %d to %d", ship.ID, target.ID)
	}

	return nil
}
