package engine

import "errors"

var (
	// ErrRoundLimit - бой не закончился за MaxRounds раундов.
	ErrRoundLimit = errors.New("battle exceeded round limit")

	// ErrCalibrationLoss - в режиме калибровки погиб агент калибруемой фракции.
	ErrCalibrationLoss = errors.New("calibrated faction lost an agent")

	// ErrNoConvergence - калибровка не нашла силу атаки до верхней границы.
	ErrNoConvergence = errors.New("calibration did not converge")
)
