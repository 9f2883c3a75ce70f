package logger

import (
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

// Level is the routing level of an entry.
type Level string

const (
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelSecurity Level = "security"
)

func (l Level) logrusLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarning:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// LevelFor maps an error to the level it is logged at: security errors go
// to the security path, the rest follow severity.
func LevelFor(e *apperr.Error) Level {
	if e.Category() == apperr.CategorySecurity {
		return LevelSecurity
	}
	switch e.Severity() {
	case apperr.SeverityCritical, apperr.SeverityHigh:
		return LevelError
	case apperr.SeverityMedium:
		return LevelWarning
	default:
		return LevelInfo
	}
}
