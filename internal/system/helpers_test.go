package system

import (
	"math"
	"testing"

	"go-scroll-shooter/internal/defs"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/event"
	"go-scroll-shooter/internal/interfaces"
	"go-scroll-shooter/internal/utils"
)

// tolerance for floating point comparisons
const floatTolerance = 0.0001

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// testWorld wires the simulation systems against a static target, mirroring
// the per-tick order of the app layer.
type testWorld struct {
	ecs         *entity.ECS
	target      *interfaces.StaticTarget
	dispatcher  *event.Dispatcher
	effects     *VisualEffectSystem
	projectiles *ProjectileSystem
	enemies     *EnemySystem
	movement    *MovementSystem
	waves       *WaveSystem
	events      []event.Event
}

func newTestWorld() *testWorld {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	target := &interfaces.StaticTarget{X: 270, Y: 600, Present: true}

	w := &testWorld{
		ecs:        ecs,
		target:     target,
		dispatcher: dispatcher,
	}
	w.effects = NewVisualEffectSystem(ecs)
	w.projectiles = NewProjectileSystem(ecs, target)
	w.enemies = NewEnemySystem(ecs, w.projectiles, w.effects, dispatcher, target)
	w.movement = NewMovementSystem(ecs)
	w.waves = NewWaveSystem(ecs, w.enemies, dispatcher, utils.NewPRNGService(1))

	dispatcher.Subscribe(event.EnemyDestroyed, w)
	dispatcher.Subscribe(event.EnemyRetreated, w)
	dispatcher.Subscribe(event.LevelEnded, w)
	return w
}

func (w *testWorld) OnEvent(e event.Event) {
	w.events = append(w.events, e)
}

func (w *testWorld) countEvents(eventType event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// tick runs one full simulation step in the app order.
func (w *testWorld) tick(deltaTime float64) {
	w.ecs.GameTime += deltaTime
	w.enemies.Update(deltaTime)
	w.projectiles.Update(deltaTime)
	w.movement.Update(deltaTime)
	w.effects.Update(deltaTime)
}

// tickNoPool runs a step without the projectile pool update, so spawned
// projectiles are never retired and the pool count equals total spawns.
func (w *testWorld) tickNoPool(deltaTime float64) {
	w.ecs.GameTime += deltaTime
	w.enemies.Update(deltaTime)
	w.movement.Update(deltaTime)
}

// installTestEnemy registers an enemy definition for the duration of a test.
func installTestEnemy(t *testing.T, def defs.EnemyDefinition) {
	t.Helper()
	if len(def.MuzzleOffsets) == 0 {
		def.MuzzleOffsets = []defs.Offset{{X: 0, Y: 0}}
	}
	if def.Scale == 0 {
		def.Scale = 1
	}
	if def.Visuals.RadiusFactor == 0 {
		def.Visuals.RadiusFactor = 1
	}
	prev, had := defs.EnemyLibrary[def.ID]
	defs.EnemyLibrary[def.ID] = def
	t.Cleanup(func() {
		if had {
			defs.EnemyLibrary[def.ID] = prev
		} else {
			delete(defs.EnemyLibrary, def.ID)
		}
	})
}

// installTestProjectile registers a projectile definition for the duration of a test.
func installTestProjectile(t *testing.T, def defs.ProjectileDefinition) {
	t.Helper()
	prev, had := defs.ProjectileLibrary[def.ID]
	defs.ProjectileLibrary[def.ID] = def
	t.Cleanup(func() {
		if had {
			defs.ProjectileLibrary[def.ID] = prev
		} else {
			delete(defs.ProjectileLibrary, def.ID)
		}
	})
}

func testShotDef() defs.ProjectileDefinition {
	return defs.ProjectileDefinition{
		ID:         "TEST_SHOT",
		Behavior:   defs.BehaviorStraight,
		Speed:      240,
		LifetimeMs: 1000,
		Damage:     1,
	}
}
