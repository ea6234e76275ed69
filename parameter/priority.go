package parameter

// System Execution Priorities (lower runs first)
// Order is fixed: spawn, recharge, motion, explosion, collision, apocalypse
const (
	PrioritySpawn      = 10
	PriorityRecharge   = 20
	PriorityMotion     = 30
	PriorityExplosion  = 40
	PriorityCollision  = 50
	PriorityApocalypse = 60
)
