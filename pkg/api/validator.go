package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("item index cannot be negative")
	}
	return nil
}

func (p PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("target outside of the map")
	}
	return nil
}

// Validate проверяет, что у ввода есть payload, нужный его виду.
func (in Input) Validate() error {
	var payload Validator

	switch in.Kind {
	case InputMove:
		if in.Direction == nil {
			return errors.New("move requires direction")
		}
		payload = in.Direction
	case InputSelectItem:
		if in.Item == nil {
			return errors.New("select requires item")
		}
		payload = in.Item
	case InputSelectTarget:
		if in.Target == nil {
			return errors.New("target requires position")
		}
		payload = in.Target
	case InputNone, InputWait, InputPickup, InputOpenInventory, InputOpenDrop, InputCancel:
		return nil
	default:
		return fmt.Errorf("unknown input kind %q", in.Kind)
	}

	if err := payload.Validate(); err != nil {
		return fmt.Errorf("%s: %w", in.Kind, err)
	}
	return nil
}
