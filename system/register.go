package system

import "github.com/lixenwraith/planet-defense/engine"

// RegisterAll adds every simulation system to the world
func RegisterAll(world *engine.World) {
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewRechargeSystem(world))
	world.AddSystem(NewMotionSystem(world))
	world.AddSystem(NewExplosionSystem(world))
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewApocalypseSystem(world))
}
