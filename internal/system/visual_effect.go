// internal/system/visual_effect.go
package system

import (
	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/defs"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона
// и одноразовыми взрывами при уничтожении.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// SpawnExplosion запускает эффект уничтожения по его ID. Пустой или
// неизвестный ID — тихая деградация: юнит исчезает без эффекта.
func (s *VisualEffectSystem) SpawnExplosion(x, y float64, effectID string) {
	if effectID == "" {
		return
	}
	def, ok := defs.EffectLibrary[effectID]
	if !ok {
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Explosions[id] = &component.Explosion{
		Duration:  def.DurationSeconds(),
		MaxRadius: def.MaxRadius,
		Color:     def.Color,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Color,
		Radius: 0,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Взрывы: радиус растет до максимума, затем эффект удаляется.
	for id, explosion := range s.ecs.Explosions {
		explosion.CurrentTimer += deltaTime
		if explosion.CurrentTimer >= explosion.Duration {
			delete(s.ecs.Explosions, id)
			delete(s.ecs.Positions, id)
			delete(s.ecs.Renderables, id)
			continue
		}

		if renderable, ok := s.ecs.Renderables[id]; ok {
			progress := explosion.CurrentTimer / explosion.Duration
			renderable.Radius = float32(utils.Lerp(0, explosion.MaxRadius, progress))
		}
	}
}
