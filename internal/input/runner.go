package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunScript читает сценарий построчно и подает его движку. Ошибочные
// и отвергнутые движком строки пропускаются с предупреждением, нарушение
// инварианта прерывает сценарий. Возвращает число исполненных строк.
func RunScript(ctx context.Context, e *engine.Engine, r io.Reader) (int, error) {
	if e.State().Phase == engine.PhasePreRun {
		if err := e.Advance(api.Input{}); err != nil {
			return 0, err
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo, executed := 0, 0

	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if e.GameOver() {
			break
		}

		scriptLogger := logger.Log.WithFields(logrus.Fields{
			"component": "script",
			"line":      lineNo,
		})

		inputs, err := Parse(scanner.Text(), e.Snapshot().Inventory)
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			scriptLogger.WithError(err).Warn("Line skipped.")
			continue
		}

		rejected := false
		for _, in := range inputs {
			err := e.Advance(in)
			if err == nil {
				continue
			}

			var ie *domain.InvariantError
			switch {
			case errors.As(err, &ie):
				return executed, fmt.Errorf("script line %d: %w", lineNo, err)
			case errors.Is(err, engine.ErrGameOver):
				return executed, nil
			case errors.Is(err, engine.ErrInputRejected):
				scriptLogger.WithError(err).Warn("Input rejected.")
				rejected = true
			default:
				return executed, fmt.Errorf("script line %d: %w", lineNo, err)
			}
			break
		}
		if rejected {
			// Незавершенная строка не оставляет открытых меню
			if e.State().Phase.IsModal() {
				if err := e.Advance(api.Cancel()); err != nil {
					return executed, fmt.Errorf("script line %d: %w", lineNo, err)
				}
			}
			continue
		}
		executed++
	}

	if err := scanner.Err(); err != nil {
		return executed, fmt.Errorf("read script: %w", err)
	}
	return executed, nil
}
