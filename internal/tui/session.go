package tui

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Session - интерактивная игра: кадр -> экран, клавиша -> ввод.
type Session struct {
	engine   *engine.Engine
	renderer *Renderer
	in       *bufio.Reader
	out      io.Writer

	// cursor жив только в режиме выбора цели
	cursor *Cursor
}

func NewSession(e *engine.Engine, r *Renderer, in io.Reader, out io.Writer) *Session {
	return &Session{
		engine:   e,
		renderer: r,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run крутит цикл до выхода игрока, конца ввода или отмены ctx.
// После смерти игрока экран остается до нажатия q.
func (s *Session) Run(ctx context.Context) error {
	if s.engine.State().Phase == engine.PhasePreRun {
		if err := s.engine.Advance(api.Input{}); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame := s.engine.Snapshot()
		s.syncCursor(frame)
		if err := s.renderer.Render(s.out, frame, s.cursor); err != nil {
			return err
		}

		key, err := ReadKey(s.in)
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		if done, err := s.handle(key, frame); done || err != nil {
			return err
		}
	}
}

// handle исполняет одно нажатие. done - игрок вышел.
func (s *Session) handle(key Key, frame api.Frame) (done bool, err error) {
	cmd := MapKey(key, s.engine.State().Phase)

	switch cmd.Action {
	case ActionQuit:
		return true, nil

	case ActionCursor:
		if s.cursor != nil {
			s.cursor.X = clamp(s.cursor.X+cmd.DX, 0, frame.Grid.Width-1)
			s.cursor.Y = clamp(s.cursor.Y+cmd.DY, 0, frame.Grid.Height-1)
		}
		return false, nil

	case ActionAim:
		if s.cursor == nil {
			return false, nil
		}
		cmd.Input = api.SelectTarget(s.cursor.X, s.cursor.Y)

	case ActionInput:

	default:
		return false, nil
	}

	if s.engine.GameOver() {
		return false, nil
	}

	err = s.engine.Advance(cmd.Input)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, engine.ErrGameOver) {
		return false, nil
	}

	// Ошибки ввода не фатальны, нарушение инварианта - фатально
	if errors.Is(err, engine.ErrInputRejected) {
		logger.Log.WithFields(logrus.Fields{
			"component": "tui",
			"input":     cmd.Input.Kind,
		}).WithError(err).Warn("Input rejected.")
		return false, nil
	}
	return true, err
}

// syncCursor ставит прицел на ближайшего видимого монстра при входе в
// режим выбора цели и убирает его при выходе.
func (s *Session) syncCursor(frame api.Frame) {
	if frame.Targeting == nil || frame.Player == nil {
		s.cursor = nil
		return
	}
	if s.cursor != nil {
		return
	}

	me := frame.Player.Pos
	s.cursor = &Cursor{X: me.X, Y: me.Y}
	best := -1
	for _, ev := range frame.Entities {
		if ev.Type != "MONSTER" {
			continue
		}
		dx, dy := ev.Pos.X-me.X, ev.Pos.Y-me.Y
		if d := dx*dx + dy*dy; best < 0 || d < best {
			best = d
			s.cursor = &Cursor{X: ev.Pos.X, Y: ev.Pos.Y}
		}
	}
}
