package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init работает с настройками logrus по умолчанию, чтобы пакеты
// симуляции можно было использовать как библиотеку.
var Log = logrus.New()

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Log = logrus.New()

	// 1. Уровень логирования из переменной окружения.
	// По умолчанию - "info". Для трассировки ходов можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для сбора логов, "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// 3. Логи пишем в stderr: stdout занят результатом симуляции.
	Log.SetOutput(os.Stderr)
}

// For возвращает запись с полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// DebugEnabled нужен в горячих циклах, чтобы не собирать поля впустую.
func DebugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
