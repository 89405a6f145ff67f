package types

import "github.com/cbodonnell/flotilla/pkg/kinematic"

// Ship is one vessel in a session's fleet. ID is the ship's index in
// GameSession.Ships and is how every instruction addresses it.
type Ship struct {
	ID       uint32           `json:"id"`
	Owner    PlayerID         `json:"owner"`
	Position kinematic.Vector `json:"position"`
	// Rotation is the heading in degrees, counter-clockwise from the X axis.
	Rotation float64 `json:"rotation"`
	// Health may go negative and is never clamped back up.
	Health float64 `json:"health"`

	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`
	MinAngle float64 `json:"minAngle"`
	MaxAngle float64 `json:"maxAngle"`

	Maneuver  Maneuver `json:"maneuver"`
	Weapon    Weapon   `json:"weapon"`
	Activated bool     `json:"activated"`
}

// Maneuver is the movement intent submitted for the current maneuver
// sub-phase. An angle of zero is a straight move.
type Maneuver struct {
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
}

// Weapon holds a ship's firing stats. Arc is a half-angle in degrees and
// HitChance is a probability in [0, 1].
type Weapon struct {
	Arc       float64 `json:"arc"`
	Range     float64 `json:"range"`
	Damage    float64 `json:"damage"`
	HitChance float64 `json:"hitChance"`
}

// IsAlive returns true if the ship has health left.
func (s *Ship) IsAlive() bool {
	return s.Health > 0
}

// Destroy takes the ship out of the rest of the game without touching its
// health: it is marked activated so the turn cycle skips it, and its intent
// is cleared.
func (s *Ship) Destroy() {
	s.Activated = true
	s.Maneuver = Maneuver{}
}
