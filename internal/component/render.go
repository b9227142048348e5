// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	Rotation  float64 // Направление "носа" с учетом поправки на арт
	HasStroke bool
}
