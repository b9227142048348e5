package component

// Health — компонент здоровья
type Health struct {
	Value int
}
