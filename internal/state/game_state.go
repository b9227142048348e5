// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-scroll-shooter/internal/app"
	"go-scroll-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *game.Game
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:   sm,
		game: game.NewGame(),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if s.game.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm))
		return
	}
	s.game.Update(deltaTime)
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.game.Draw(screen)

	face := basicfont.Face7x13
	hud := fmt.Sprintf("SCORE %d   LEVEL %d   HULL %d", s.game.Score, s.game.LevelNumber(), s.game.Hull())
	text.Draw(screen, hud, face, 8, 16, config.HUDColor)

	if s.game.GameOver {
		text.Draw(screen, "GAME OVER", face, config.ScreenWidth/2-32, config.ScreenHeight/2, config.HUDColor)
		text.Draw(screen, "press R to restart", face, config.ScreenWidth/2-60, config.ScreenHeight/2+20, config.HUDColor)
	}
}
