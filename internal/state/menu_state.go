// internal/state/menu_state.go
package state

import (
	"go-scroll-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — состояние главного меню
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "SCROLL SHOOTER", face, config.ScreenWidth/2-49, config.ScreenHeight/2-20, config.HUDColor)
	text.Draw(screen, "press Enter to start", face, config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.HUDColor)
}
