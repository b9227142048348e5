package component

// ScriptPhase — фаза скриптовой последовательности врага.
type ScriptPhase int

const (
	ScriptApproach ScriptPhase = iota
	ScriptBurst
	ScriptSelfDestruct
	ScriptDone
)

// ScriptState — состояние скриптовой последовательности одного врага.
type ScriptState struct {
	Phase        ScriptPhase
	NextActionAt float64 // Игровое время следующего действия (выстрел или подрыв)
	ShotsFired   int
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID string // ID из EnemyLibrary

	// Стрельба по интервалу
	NextFireAt      float64 // Игровое время, раньше которого залп не начнется
	VolleysLeft     int     // Оставшиеся залпы; -1 = без ограничения
	BurstShotsLeft  int     // Невыпущенные выстрелы текущего залпа
	NextBurstShotAt float64

	// Движение
	SinePhase float64 // Аккумулятор фазы для синусоидального движения

	// Отступление
	Retreating bool
	RetreatAt  float64 // До этого времени враг неподвижен, потом уходит вверх

	Script *ScriptState // nil, если у определения нет скрипта
}
