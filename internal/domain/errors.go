package domain

import "errors"

var (
	// ErrBadDimensions - карта не прямоугольная или пустая.
	ErrBadDimensions = errors.New("invalid cave dimensions")

	// ErrInvariant - нарушен инвариант ядра (двое в одной клетке, агент в стене
	// и т.п.). Это дефект логики, а не плохие входные данные.
	ErrInvariant = errors.New("simulation invariant violated")
)
