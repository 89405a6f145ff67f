package game

import (
	"github.com/cbodonnell/flotilla/pkg/game/constants"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/kinematic"
)

// NewFleetSession returns a freshly deployed session pairing player1 and
// player2. Player1 moves first.
func NewFleetSession(gameID uint64, player1, player2 types.PlayerID) *types.GameSession {
	session := types.NewGameSession(gameID)
	session.Player1 = player1
	session.Player2 = player2
	session.ActivePlayer = player1

	ships := make([]types.Ship, 0, 2*constants.ShipsPerPlayer)
	for _, x := range constants.ShipStartingX {
		ships = append(ships, newShip(uint32(len(ships)), player1, x, constants.Player1StartingY, constants.Player1Rotation))
	}
	for _, x := range constants.ShipStartingX {
		ships = append(ships, newShip(uint32(len(ships)), player2, x, constants.Player2StartingY, constants.Player2Rotation))
	}
	session.Ships = ships

	return session
}

func newShip(id uint32, owner types.PlayerID, x, y, rotation float64) types.Ship {
	return types.Ship{
		ID:    id,
		Owner: owner,
		Position: kinematic.Vector{
			X: x,
			Y: y,
		},
		Rotation: rotation,
		Health:   constants.ShipHealth,
		MinSpeed: constants.ShipMinSpeed,
		MaxSpeed: constants.ShipMaxSpeed,
		MinAngle: constants.ShipMinAngle,
		MaxAngle: constants.ShipMaxAngle,
		Weapon: types.Weapon{
			Arc:       constants.WeaponArc,
			Range:     constants.WeaponRange,
			Damage:    constants.WeaponDamage,
			HitChance: constants.WeaponHitChance,
		},
	}
}
