package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const serviceName = "bankorder"

// New инициализирует логгер. В продакшн окружении пишет JSON с уровнем Info, в остальных текст с Debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "message"},
	})
	l.SetLevel(logrus.InfoLevel)
	l.AddHook(serviceHook{})

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}

// SetLevel меняет уровень логгера. Пустая строка оставляет уровень окружения.
func SetLevel(l *logrus.Logger, level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	l.SetLevel(lvl)
	return nil
}

// serviceHook добавляет имя сервиса в каждую запись, чтобы логи можно было отфильтровать в общем потоке.
type serviceHook struct{}

func (serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (serviceHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["service"]; !ok {
		e.Data["service"] = serviceName
	}
	return nil
}
