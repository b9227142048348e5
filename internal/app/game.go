// internal/app/game.go
package app

import (
	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/config"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/event"
	"go-scroll-shooter/internal/system"
	"go-scroll-shooter/internal/types"
	"go-scroll-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	EnemySystem        *system.EnemySystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	PlayerID types.EntityID
	Score    int
	GameOver bool

	player          *component.Player
	levelNumber     int
	levelStartTimer float64
	gameTime        float64
}

// NewGame initializes a new game instance.
func NewGame() *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(0),
		levelNumber:     1,
		levelStartTimer: config.LevelStartDelay,
	}

	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g)
	g.EnemySystem = system.NewEnemySystem(ecs, g.ProjectileSystem, g.VisualEffectSystem, eventDispatcher, g)
	g.WaveSystem = system.NewWaveSystem(ecs, g.EnemySystem, eventDispatcher, g.Rng)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	eventDispatcher.Subscribe(event.EnemyDestroyed, g)
	eventDispatcher.Subscribe(event.LevelEnded, g)

	g.spawnPlayer()
	return g
}

// TargetPosition реализует interfaces.TargetProvider: цель вражеского
// огня — корабль игрока.
func (g *Game) TargetPosition() (float64, float64, bool) {
	pos, ok := g.ECS.Positions[g.PlayerID]
	if !ok || g.GameOver {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}

// LevelNumber возвращает номер текущего уровня.
func (g *Game) LevelNumber() int {
	return g.levelNumber
}

// Hull возвращает оставшуюся прочность корабля игрока.
func (g *Game) Hull() int {
	return g.player.Hull
}

func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			g.Score += data.Score
		}
	case event.LevelEnded:
		g.ECS.Level = nil
		g.levelNumber++
		g.levelStartTimer = config.LevelStartDelay
	}
}

func (g *Game) Update(deltaTime float64) {
	if g.GameOver {
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.handleInput(deltaTime)

	if g.ECS.Level == nil {
		g.levelStartTimer -= deltaTime
		if g.levelStartTimer <= 0 {
			g.ECS.Level = g.WaveSystem.StartLevel(g.levelNumber)
		}
	}

	// Сначала все юниты, затем пул снарядов, затем интеграция позиций.
	g.EnemySystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime, g.ECS.Level)
	g.VisualEffectSystem.Update(deltaTime)

	g.resolveCollisions()
	g.cullPlayerShots()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

func (g *Game) spawnPlayer() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight - 60}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Radius: config.PlayerRadius,
	}
	g.PlayerID = id
	g.player = &component.Player{Hull: config.PlayerHull}
}

func (g *Game) handleInput(deltaTime float64) {
	pos := g.ECS.Positions[g.PlayerID]
	vel := g.ECS.Velocities[g.PlayerID]
	if pos == nil || vel == nil {
		return
	}

	vel.X, vel.Y = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vel.X = -config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vel.X = config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		vel.Y = -config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		vel.Y = config.PlayerSpeed
	}

	// Не даем кораблю уйти за экран
	if pos.X < config.PlayerRadius {
		pos.X = config.PlayerRadius
	}
	if pos.X > config.ScreenWidth-config.PlayerRadius {
		pos.X = config.ScreenWidth - config.PlayerRadius
	}
	if pos.Y < config.ScreenHeight/2 {
		pos.Y = config.ScreenHeight / 2
	}
	if pos.Y > config.ScreenHeight-config.PlayerRadius {
		pos.Y = config.ScreenHeight - config.PlayerRadius
	}

	g.player.FireCooldown -= deltaTime
	if ebiten.IsKeyPressed(ebiten.KeySpace) && g.player.FireCooldown <= 0 {
		g.firePlayerShot(pos)
		g.player.FireCooldown = config.PlayerFireCooldown
	}
}

func (g *Game) firePlayerShot(pos *component.Position) {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y - config.PlayerRadius}
	g.ECS.Velocities[id] = &component.Velocity{X: 0, Y: -config.PlayerShotSpeed}
	g.ECS.PlayerShots[id] = &component.PlayerShot{Damage: config.PlayerShotDamage}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerShotColor,
		Radius: 3,
	}
}

// resolveCollisions — роль внешнего коллаборатора столкновений: простая
// проверка перекрытия кругов. Ядро симуляции столкновения не разрешает.
func (g *Game) resolveCollisions() {
	// Выстрелы игрока против врагов и разрушаемых снарядов
	for shotID, shot := range g.ECS.PlayerShots {
		shotPos := g.ECS.Positions[shotID]
		if shotPos == nil {
			g.removePlayerShot(shotID)
			continue
		}

		hit := false
		for enemyID := range g.ECS.Enemies {
			enemyPos := g.ECS.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			radius := g.EnemySystem.BodyRadius(enemyID)
			if circlesOverlap(shotPos.X, shotPos.Y, 3, enemyPos.X, enemyPos.Y, radius) {
				g.EnemySystem.TakeDamage(enemyID, shot.Damage)
				hit = true
				break
			}
		}
		if !hit {
			for projID, proj := range g.ECS.Projectiles {
				if !proj.Destructible {
					continue
				}
				projPos := g.ECS.Positions[projID]
				if projPos == nil {
					continue
				}
				if circlesOverlap(shotPos.X, shotPos.Y, 3, projPos.X, projPos.Y, config.ProjectileRadius) {
					g.ProjectileSystem.Damage(projID, shot.Damage)
					hit = true
					break
				}
			}
		}
		if hit {
			g.removePlayerShot(shotID)
		}
	}

	// Вражеские снаряды против игрока
	playerPos := g.ECS.Positions[g.PlayerID]
	if playerPos == nil {
		return
	}
	for projID, proj := range g.ECS.Projectiles {
		projPos := g.ECS.Positions[projID]
		if projPos == nil {
			continue
		}
		if circlesOverlap(projPos.X, projPos.Y, config.ProjectileRadius,
			playerPos.X, playerPos.Y, config.PlayerRadius) {
			g.removeEnemyProjectile(projID)
			g.player.Hull -= proj.Damage
			g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Damage: proj.Damage}})
			if g.player.Hull <= 0 {
				g.GameOver = true
				return
			}
		}
	}
}

// cullPlayerShots убирает выстрелы игрока, ушедшие за верхнюю границу.
func (g *Game) cullPlayerShots() {
	for id := range g.ECS.PlayerShots {
		pos := g.ECS.Positions[id]
		if pos == nil || pos.Y < -config.PlayfieldMargin {
			g.removePlayerShot(id)
		}
	}
}

func (g *Game) removePlayerShot(id types.EntityID) {
	delete(g.ECS.Positions, id)
	delete(g.ECS.Velocities, id)
	delete(g.ECS.PlayerShots, id)
	delete(g.ECS.Renderables, id)
}

func (g *Game) removeEnemyProjectile(id types.EntityID) {
	delete(g.ECS.Positions, id)
	delete(g.ECS.Velocities, id)
	delete(g.ECS.Projectiles, id)
	delete(g.ECS.Renderables, id)
}

func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	limit := r1 + r2
	return dx*dx+dy*dy <= limit*limit
}
