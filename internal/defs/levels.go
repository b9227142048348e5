// internal/defs/levels.go
package defs

import "time"

// LevelSpawn — одна группа врагов внутри уровня.
type LevelSpawn struct {
	EnemyID string // Идентификатор врага из EnemyLibrary
	Count   int    // Количество врагов этого типа
}

// LevelDefinition описывает параметры для одного уровня.
type LevelDefinition struct {
	Spawns        []LevelSpawn  // Группы врагов, спавнятся по порядку
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// LevelPatterns определяет последовательность уровней в игре.
// Ключ карты - это номер уровня.
var LevelPatterns = map[int]LevelDefinition{
	1: {
		Spawns:        []LevelSpawn{{EnemyID: "ENEMY_FIGHTER", Count: 6}},
		SpawnInterval: time.Millisecond * 900,
	},
	2: {
		Spawns:        []LevelSpawn{{EnemyID: "ENEMY_FIGHTER", Count: 6}, {EnemyID: "ENEMY_BOMBER", Count: 3}},
		SpawnInterval: time.Millisecond * 800,
	},
	3: {
		Spawns:        []LevelSpawn{{EnemyID: "ENEMY_FIGHTER", Count: 5}, {EnemyID: "ENEMY_TORPEDO_BOAT", Count: 4}},
		SpawnInterval: time.Millisecond * 800,
	},
	4: {
		Spawns:        []LevelSpawn{{EnemyID: "ENEMY_GUNSHIP", Count: 3}, {EnemyID: "ENEMY_BOMBER", Count: 4}},
		SpawnInterval: time.Millisecond * 700,
	},
	5: {
		Spawns:        []LevelSpawn{{EnemyID: "ENEMY_RAIDER", Count: 2}, {EnemyID: "ENEMY_FIGHTER", Count: 8}},
		SpawnInterval: time.Millisecond * 600,
	},
	6: {
		Spawns: []LevelSpawn{
			{EnemyID: "ENEMY_GUNSHIP", Count: 4},
			{EnemyID: "ENEMY_TORPEDO_BOAT", Count: 4},
			{EnemyID: "ENEMY_RAIDER", Count: 3},
		},
		SpawnInterval: time.Millisecond * 500,
	},
}
