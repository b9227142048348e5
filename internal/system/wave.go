// internal/system/wave.go
package system

import (
	"log"

	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/config"
	"go-scroll-shooter/internal/defs"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/event"
	"go-scroll-shooter/internal/utils"
)

// WaveSystem — политика спавна: решает, какого врага создать и когда.
// Сама логика поведения юнита живет в EnemySystem; здесь только очередь
// появления и учет живых врагов уровня.
type WaveSystem struct {
	ecs             *entity.ECS
	enemies         *EnemySystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, enemies *EnemySystem, eventDispatcher *event.Dispatcher,
	rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		enemies:         enemies,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	eventDispatcher.Subscribe(event.EnemyRetreated, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, level *component.Level) {
	if level == nil {
		return
	}
	if len(level.PendingIDs) > 0 {
		level.SpawnTimer += deltaTime
		if level.SpawnTimer >= level.SpawnInterval {
			s.spawnEnemy(level.PendingIDs[0])
			level.PendingIDs = level.PendingIDs[1:]
			level.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelEnded})
	}
}

func (s *WaveSystem) spawnEnemy(defID string) {
	// Спавн над верхней границей со случайным X; вход в поле враг
	// отыгрывает сам своим паттерном движения.
	x := s.rng.Range(config.EnemyRadius*2, config.ScreenWidth-config.EnemyRadius*2)
	y := -config.EnemyRadius * 2
	if _, ok := s.enemies.Spawn(defID, x, y); ok {
		s.activeEnemies++
	}
}

// StartLevel собирает состояние уровня по его номеру. Уровни после
// последнего определенного повторяются по кольцу из верхней трети таблицы.
func (s *WaveSystem) StartLevel(levelNumber int) *component.Level {
	levelDef, ok := defs.LevelPatterns[levelNumber]
	if !ok {
		repeating := ((levelNumber - 4) % 3) + 4
		levelDef, ok = defs.LevelPatterns[repeating]
		if !ok {
			log.Printf("Критическая ошибка: не найдено определение для повторяющегося уровня %d", repeating)
			levelDef = defs.LevelPatterns[1]
		}
	}

	var pending []string
	for _, spawn := range levelDef.Spawns {
		for i := 0; i < spawn.Count; i++ {
			pending = append(pending, spawn.EnemyID)
		}
	}

	return &component.Level{
		Number:        levelNumber,
		PendingIDs:    pending,
		SpawnTimer:    0,
		SpawnInterval: levelDef.SpawnInterval.Seconds(),
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.EnemyRetreated:
		s.activeEnemies--
	}
}
