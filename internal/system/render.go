// internal/system/render.go
package system

import (
	"math"

	"go-scroll-shooter/internal/config"
	"go-scroll-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		if render.HasStroke {
			strokeRadius := render.Radius + 2
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.HUDColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)

		// Вспышка урона поверх тела
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, config.HitFlashColor, true)
		}

		// "Нос" снаряда по направлению полета
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			noseLen := float64(render.Radius) + 4
			nx := pos.X + math.Sin(render.Rotation)*noseLen
			ny := pos.Y + math.Cos(render.Rotation)*noseLen
			vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(nx), float32(ny), 2.0, render.Color, true)
		}
	}
}
