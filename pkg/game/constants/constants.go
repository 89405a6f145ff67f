package constants

const (

	// ArenaHalfWidth is the largest |x| a ship can occupy and survive
	ArenaHalfWidth float64 = 42.0
	// ArenaHalfHeight is the largest |y| a ship can occupy and survive
	ArenaHalfHeight float64 = 73.0

	// ArcAngleScale converts a maneuver angle into a turning rate
	ArcAngleScale float64 = 8.0

	// ShipsPerPlayer is the size of each fleet
	ShipsPerPlayer int = 3
	// Ship starting hitpoints
	ShipHealth float64 = 100.0
	// Ship speed bounds
	ShipMinSpeed float64 = 10.0
	ShipMaxSpeed float64 = 30.0
	// Ship turn angle bounds
	ShipMinAngle float64 = 0.0
	ShipMaxAngle float64 = 90.0

	// Player1StartingY is the deployment line of the first player's fleet
	Player1StartingY float64 = -40.0
	// Player1Rotation points the first player's fleet up the arena
	Player1Rotation float64 = 90.0
	// Player2StartingY is the deployment line of the second player's fleet
	Player2StartingY float64 = 40.0
	// Player2Rotation points the second player's fleet down the arena
	Player2Rotation float64 = -90.0

	// WeaponArc is the firing half-angle in degrees
	WeaponArc float64 = 45.0
	// WeaponRange is the maximum firing distance
	WeaponRange float64 = 50.0
	// WeaponDamage is subtracted from the target's health on a hit
	WeaponDamage float64 = 40.0
	// WeaponHitChance is the probability a shot hits
	WeaponHitChance float64 = 0.7

	// Upgrade increments

	UpgradeSpeed          float64 = 10.0
	UpgradeAgility        float64 = 11.25
	UpgradeWeaponArc      float64 = 12.5
	UpgradeWeaponRange    float64 = 10.0
	UpgradeWeaponDamage   float64 = 20.0
	UpgradeWeaponAccuracy float64 = 0.1
)

// ShipStartingX lists the deployment columns, in ship id order, shared by
// both fleets.
var ShipStartingX = [ShipsPerPlayer]float64{20.0, 0.0, -20.0}
