// Package settings serves the operator preferences page. Changes are
// acknowledged but never persisted.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evcharge-admin-backend/internal/notification"
)

// ErrUnknownOperation is returned for operations other than the Op constants.
var ErrUnknownOperation = errors.New("unknown settings operation")

// Op names a settings page operation.
type Op string

const (
	OpSave   Op = "save"
	OpReset  Op = "reset"
	OpExport Op = "export"
	OpImport Op = "import"
)

// Notifications are the channels an operator is alerted through.
type Notifications struct {
	Email  bool `json:"email"`
	SMS    bool `json:"sms"`
	Push   bool `json:"push"`
	Alerts bool `json:"alerts"`
}

// Privacy are the data usage consents.
type Privacy struct {
	Analytics   bool `json:"analytics"`
	Marketing   bool `json:"marketing"`
	DataSharing bool `json:"dataSharing"`
}

// Settings is the full preferences page.
type Settings struct {
	Notifications Notifications `json:"notifications"`
	Privacy       Privacy       `json:"privacy"`
}

// Defaults returns the initial preferences.
func Defaults() Settings {
	return Settings{
		Notifications: Notifications{Email: true, SMS: false, Push: true, Alerts: true},
		Privacy:       Privacy{Analytics: true, Marketing: false, DataSharing: false},
	}
}

var outcomes = map[Op]struct {
	level   notification.Level
	message string
}{
	OpSave:   {notification.LevelSuccess, "Settings saved successfully!"},
	OpReset:  {notification.LevelInfo, "Settings reset to defaults"},
	OpExport: {notification.LevelSuccess, "Exporting configuration..."},
	OpImport: {notification.LevelInfo, "Configuration import started..."},
}

// Service runs settings operations.
type Service struct {
	saveDelay time.Duration
	feed      notification.Publisher
}

// NewService creates a service. Saves take saveDelay to complete.
func NewService(saveDelay time.Duration, feed notification.Publisher) *Service {
	return &Service{saveDelay: saveDelay, feed: feed}
}

// Run performs op and returns the toast it published. A cancelled save
// wait completes the save early.
func (s *Service) Run(ctx context.Context, op Op) (notification.Toast, error) {
	out, ok := outcomes[op]
	if !ok {
		return notification.Toast{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if op == OpSave {
		timer := time.NewTimer(s.saveDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}
	return s.feed.Publish(out.level, out.message), nil
}
