package command

import (
	"fmt"
	"sort"
	"strings"

	"evcharge-admin-backend/internal/notification"
)

// Subject holds the record attributes an action message refers to, keyed
// by field name (id, name, email, user).
type Subject map[string]string

// message renders the toast text of one action. Arguments name Subject
// fields; a "param:" prefix reads the action parameters instead.
type message struct {
	level  notification.Level
	format string
	args   []string
}

func (m message) render(s Subject, params map[string]string) string {
	vals := make([]any, len(m.args))
	for i, a := range m.args {
		if p, ok := strings.CutPrefix(a, "param:"); ok {
			vals[i] = params[p]
			continue
		}
		vals[i] = s[a]
	}
	return fmt.Sprintf(m.format, vals...)
}

func (m message) requiredParams() []string {
	var out []string
	for _, a := range m.args {
		if p, ok := strings.CutPrefix(a, "param:"); ok {
			out = append(out, p)
		}
	}
	return out
}

func msg(level notification.Level, format string, args ...string) message {
	return message{level: level, format: format, args: args}
}

// Names of the actions that apply to a whole collection rather than one
// record.
const (
	Create = "create"
	Export = "export"
	Import = "import"
)

var collectionLevel = map[string]bool{Create: true, Export: true, Import: true}

// IsCollectionLevel reports whether the action takes no record.
func IsCollectionLevel(name string) bool {
	return collectionLevel[Normalize(name)]
}

var (
	info    = notification.LevelInfo
	success = notification.LevelSuccess
	warning = notification.LevelWarning
	failure = notification.LevelError
)

var registry = map[string]map[string]message{
	"stations": {
		"edit":        msg(info, "Editing station: %s", "name"),
		"maintenance": msg(warning, "Scheduling maintenance for %s", "name"),
		"restart":     msg(info, "Restarting station: %s", "name"),
		"contact":     msg(info, "Contacting operator for %s", "name"),
		"delete":      msg(failure, "Delete request for station: %s", "name"),
		Create:        msg(success, "Station created successfully!"),
		Export:        msg(success, "Exporting station data..."),
	},
	"chargers": {
		"reset":       msg(info, "Resetting charger %s", "id"),
		"enable":      msg(success, "Enabling charger %s", "id"),
		"disable":     msg(warning, "Disabling charger %s", "id"),
		"maintenance": msg(warning, "Starting maintenance for charger %s", "id"),
	},
	"users": {
		"edit":     msg(info, "Editing user: %s", "name"),
		"contact":  msg(info, "Contacting %s via %s", "name", "email"),
		"suspend":  msg(warning, "Suspending user: %s", "name"),
		"activate": msg(success, "Activating user: %s", "name"),
		"reward":   msg(success, "Sending reward to %s", "name"),
		"delete":   msg(failure, "Deletion request for user: %s", "name"),
		Create:     msg(success, "User created successfully!"),
		Export:     msg(success, "Exporting user data..."),
	},
	"transactions": {
		"invoice": msg(info, "Generating invoice for transaction %s", "id"),
		"refund":  msg(warning, "Processing refund for transaction %s", "id"),
	},
	"settlements": {
		"process-payout": msg(success, "Processing payout %s", "id"),
	},
	"cpos": {
		"test-connection":        msg(info, "Testing connection for CPO %s", "id"),
		"sync":                   msg(info, "Syncing data for CPO %s", "id"),
		"regenerate-credentials": msg(warning, "Regenerating credentials for CPO %s", "id"),
		Create:                   msg(success, "CPO created successfully!"),
	},
	"tariffs": {
		"edit":       msg(info, "Editing tariff: %s", "name"),
		"duplicate":  msg(success, "Duplicated tariff: %s", "name"),
		"activate":   msg(success, "Activated tariff: %s", "name"),
		"deactivate": msg(warning, "Deactivated tariff: %s", "name"),
		"delete":     msg(failure, "Deleted tariff: %s", "name"),
		Create:       msg(success, "Tariff created successfully!"),
	},
	"promotions": {
		"edit":      msg(info, "Editing campaign: %s", "name"),
		"duplicate": msg(success, "Duplicated campaign: %s", "name"),
		"activate":  msg(success, "Activated campaign: %s", "name"),
		"pause":     msg(warning, "Paused campaign: %s", "name"),
		Create:      msg(success, "Campaign created successfully!"),
	},
	"fees": {
		"edit":      msg(info, "Editing fee structure: %s", "name"),
		"duplicate": msg(success, "Duplicating fee structure: %s", "id"),
		"delete":    msg(failure, "Deleting fee structure: %s", "id"),
		Create:      msg(success, "Fee structure created successfully!"),
		Export:      msg(success, "Exporting fee structures"),
		Import:      msg(info, "Importing fee structures"),
	},
	"tickets": {
		"assign":        msg(info, "Assigning ticket %s to %s", "id", "param:agent"),
		"escalate":      msg(warning, "Escalating ticket %s", "id"),
		"update-status": msg(info, "Updating ticket %s status to %s", "id", "param:status"),
		Create:          msg(success, "Ticket created successfully!"),
	},
	"sessions": {
		"contact": msg(info, "Contacting %s...", "user"),
		"stop":    msg(warning, "Stopping session %s", "id"),
		"restart": msg(info, "Restarting session %s", "id"),
	},
	"activities": {
		"acknowledge": msg(success, "Activity marked as resolved"),
		"escalate":    msg(info, "Issue escalated to support team"),
	},
}

// Names lists the registered actions of a collection, sorted. Record-level
// and collection-level actions are returned separately.
func Names(collection string) (record, whole []string) {
	for name := range registry[collection] {
		if collectionLevel[name] {
			whole = append(whole, name)
		} else {
			record = append(record, name)
		}
	}
	sort.Strings(record)
	sort.Strings(whole)
	return record, whole
}
