package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestReleaseFormat() {
	s.T().Setenv("GIN_MODE", "release")

	var buf bytes.Buffer
	l := New(&buf)
	s.Equal(logrus.InfoLevel, l.GetLevel())

	l.WithField("component", "service").Info("transition done")
	l.Debug("hidden")

	var record map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &record))
	s.Equal("transition done", record["message"])
	s.Equal("service", record["component"])
	s.Equal(serviceName, record["service"])
}

func (s *LoggerTestSuite) TestDevelopmentLevel() {
	s.T().Setenv("GIN_MODE", "debug")

	l := New(&bytes.Buffer{})
	s.Equal(logrus.DebugLevel, l.GetLevel())
}

func (s *LoggerTestSuite) TestSetLevel() {
	l := New(&bytes.Buffer{})

	s.Require().NoError(SetLevel(l, "warn"))
	s.Equal(logrus.WarnLevel, l.GetLevel())

	s.Require().NoError(SetLevel(l, ""))
	s.Equal(logrus.WarnLevel, l.GetLevel())

	s.Require().Error(SetLevel(l, "loud"))
}
