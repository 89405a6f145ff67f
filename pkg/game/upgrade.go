package game

import (
	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
)

// UpgradeID selects one of the stat upgrades a ship can spend its
// activation on.
type UpgradeID uint32

const (
	UpgradeSpeed UpgradeID = iota + 1
	UpgradeAgility
	UpgradeWeaponArc
	UpgradeWeaponRange
	UpgradeWeaponDamage
	UpgradeWeaponAccuracy
)

func (u UpgradeID) String() string {
	switch u {
	case UpgradeSpeed:
		return "speed"
	case UpgradeAgility:
		return "agility"
	case UpgradeWeaponArc:
		return "weapon arc"
	case UpgradeWeaponRange:
		return "weapon range"
	case UpgradeWeaponDamage:
		return "weapon damage"
	case UpgradeWeaponAccuracy:
		return "weapon hit chance"
	default:
		return "unknown"
	}
}

// apply adds the upgrade to ship and returns false for an unknown id.
func (u UpgradeID) apply(ship *types.Ship) bool {
	switch u {
	case UpgradeSpeed:
		ship.MaxSpeed += constants.UpgradeSpeed
	case UpgradeAgility:
		ship.MaxAngle += constants.UpgradeAgility
	case UpgradeWeaponArc:
		ship.Weapon.Arc += constants.UpgradeWeaponArc
	case UpgradeWeaponRange:
		ship.Weapon.Range += constants.UpgradeWeaponRange
	case UpgradeWeaponDamage:
		ship.Weapon.Damage += constants.UpgradeWeaponDamage
	case UpgradeWeaponAccuracy:
		ship.Weapon.HitChance += constants.UpgradeWeaponAccuracy
	default:
		return false
	}
	return true
}

// Upgrade spends the activation of caller's ship on a stat upgrade.
func Upgrade(session *types.GameSession, caller types.PlayerID, shipID uint32, upgradeID UpgradeID) (*types.GameSession, error) {
	if err := checkActivePlayer(session, caller); err != nil {
		return nil, err
	}
	if err := checkActivation(session, caller, shipID); err != nil {
		return nil, err
	}

	next := session.Copy()
	ship := &next.Ships[shipID]
	if !upgradeID.apply(ship) {
		return nil, reject(KindPrecondition, ErrUnknownUpgrade, "upgrade %d", uint32(upgradeID))
	}
	ship.Activated = true

	next.LastAction = types.LastActionUpgrade
	next.LastActionData = []uint32{shipID, uint32(upgradeID)}

	// upgrades cannot change who has ships left, so there is no victory check
	advanceActivation(next)

	return next, nil
}

// Skip spends the activation of caller's ship without acting.
func Skip(session *types.GameSession, caller types.PlayerID, shipID uint32) (*types.GameSession, error) {
	if err := checkActivePlayer(session, caller); err != nil {
		return nil, err
	}
	if err := checkActivation(session, caller, shipID); err != nil {
		return nil, err
	}

	next := session.Copy()
	next.Ships[shipID].Activated = true
	next.LastAction = types.LastActionSkip
	next.LastActionData = []uint32{shipID}

	advanceActivation(next)

	return next, nil
}
