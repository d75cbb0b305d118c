package tui

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrInterrupted - нажат Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Size returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MakeRaw переводит stdin в raw-режим. Вызывающий обязан вызвать restore.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// Key - одно нажатие. Для обычных клавиш заполнен Rune, для
// специальных - Name.
type Key struct {
	Rune rune
	Name string
}

const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// ReadKey читает одно нажатие, разбирая escape-последовательности стрелок.
func ReadKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 3:
		return Key{}, ErrInterrupted
	case '\r', '\n':
		return Key{Name: KeyEnter}, nil
	case 0x1b:
		// Одиночный Esc: за ним в буфере ничего нет
		if r.Buffered() == 0 {
			return Key{Name: KeyEsc}, nil
		}
		b2, err := r.ReadByte()
		if err != nil {
			return Key{Name: KeyEsc}, nil
		}
		// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
		if b2 != '[' && b2 != 'O' {
			return Key{Name: KeyEsc}, nil
		}
		b3, err := r.ReadByte()
		if err != nil {
			return Key{Name: KeyEsc}, nil
		}
		switch b3 {
		case 'A':
			return Key{Name: KeyUp}, nil
		case 'B':
			return Key{Name: KeyDown}, nil
		case 'C':
			return Key{Name: KeyRight}, nil
		case 'D':
			return Key{Name: KeyLeft}, nil
		}
		// Unknown escape sequence - discard it
		return Key{}, nil
	}
	return Key{Rune: rune(b)}, nil
}
