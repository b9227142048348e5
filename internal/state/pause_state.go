// internal/state/pause_state.go
package state

import (
	"go-scroll-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PauseState — пауза поверх игрового состояния
type PauseState struct {
	sm    *StateMachine
	under *GameState // Игра продолжает отрисовываться, но не обновляется
}

func NewPauseState(sm *StateMachine, under *GameState) *PauseState {
	return &PauseState{sm: sm, under: under}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.under)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.under.Draw(screen)
	text.Draw(screen, "PAUSED", basicfont.Face7x13, config.ScreenWidth/2-21, config.ScreenHeight/2, config.HUDColor)
}
