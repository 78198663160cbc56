package domain

// Параметры агентов по умолчанию
const (
	DefaultHitPoints   = 200
	DefaultAttackPower = 3
)
