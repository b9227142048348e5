// internal/interfaces/game_context.go
package interfaces

// TargetProvider отдает текущую позицию цели для прицельной стрельбы и
// наведения. Интерфейс разрывает цикл между системами и слоем приложения.
type TargetProvider interface {
	// TargetPosition возвращает позицию цели; ok == false, если цели нет.
	TargetPosition() (x, y float64, ok bool)
}

// StaticTarget — неподвижная цель; используется в тестах и как заглушка.
type StaticTarget struct {
	X, Y    float64
	Present bool
}

func (t *StaticTarget) TargetPosition() (float64, float64, bool) {
	return t.X, t.Y, t.Present
}
