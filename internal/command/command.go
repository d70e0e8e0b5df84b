// Package command dispatches the named menu actions of the dashboard.
// Actions never modify records; they only produce a toast.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/ettle/strcase"
	gocommand "github.com/goliatone/go-command"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/notification"
)

var (
	// ErrUnknownAction is returned for actions not registered on the
	// collection, or used at the wrong level.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingParam is returned when an action lacks a required parameter.
	ErrMissingParam = errors.New("missing action parameter")
)

// Action is a request to run a named action. RecordID is empty for
// collection-level actions such as create.
type Action struct {
	Collection string            `json:"collection"`
	RecordID   string            `json:"recordId,omitempty"`
	Name       string            `json:"name"`
	Params     map[string]string `json:"params,omitempty"`
}

// Normalize returns the canonical kebab-case action name.
func Normalize(name string) string {
	return strcase.ToKebab(name)
}

// Resolver looks up the record an action refers to.
type Resolver interface {
	Subject(ctx context.Context, collection, id string) (Subject, error)
}

// Command is a validated action ready to be handled.
type Command struct {
	Action
	Subject Subject
	Level   notification.Level
	Message string
}

// Handler carries out a command.
type Handler interface {
	Handle(ctx context.Context, cmd Command) (notification.Toast, error)
}

// Dispatcher validates actions and hands them to a Handler.
type Dispatcher struct {
	resolver Resolver
	handler  Handler
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(resolver Resolver, handler Handler) *Dispatcher {
	return &Dispatcher{resolver: resolver, handler: handler}
}

var _ gocommand.Commander[Action] = (*Dispatcher)(nil)

// Execute runs the action, discarding the toast.
func (d *Dispatcher) Execute(ctx context.Context, a Action) error {
	_, err := d.Dispatch(ctx, a)
	return err
}

// Dispatch runs the action and returns the toast it produced.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) (notification.Toast, error) {
	a.Name = Normalize(a.Name)

	m, ok := registry[a.Collection][a.Name]
	if !ok || collectionLevel[a.Name] != (a.RecordID == "") {
		return notification.Toast{}, fmt.Errorf("%w: %s on %s", ErrUnknownAction, a.Name, a.Collection)
	}
	for _, p := range m.requiredParams() {
		if a.Params[p] == "" {
			return notification.Toast{}, fmt.Errorf("%w: %s", ErrMissingParam, p)
		}
	}

	subject := Subject{}
	if a.RecordID != "" {
		var err error
		subject, err = d.resolver.Subject(ctx, a.Collection, a.RecordID)
		if err != nil {
			return notification.Toast{}, err
		}
	}

	return d.handler.Handle(ctx, Command{
		Action:  a,
		Subject: subject,
		Level:   m.level,
		Message: m.render(subject, a.Params),
	})
}

// ActionsQuery lists the actions of a collection.
type ActionsQuery struct{}

// ActionSet is the answer of ActionsQuery.
type ActionSet struct {
	Record     []string `json:"record"`
	Collection []string `json:"collection"`
}

var _ gocommand.Querier[string, ActionSet] = ActionsQuery{}

// Query returns the actions registered for collection.
func (ActionsQuery) Query(_ context.Context, collection string) (ActionSet, error) {
	record, whole := Names(collection)
	if record == nil {
		record = []string{}
	}
	if whole == nil {
		whole = []string{}
	}
	return ActionSet{Record: record, Collection: whole}, nil
}

// NotifyHandler logs the command and publishes its toast.
type NotifyHandler struct {
	feed notification.Publisher
	log  *zap.Logger
}

// NewNotifyHandler creates the default handler.
func NewNotifyHandler(feed notification.Publisher, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{feed: feed, log: log}
}

func (h *NotifyHandler) Handle(_ context.Context, cmd Command) (notification.Toast, error) {
	h.log.Info("action",
		zap.String("collection", cmd.Collection),
		zap.String("record", cmd.RecordID),
		zap.String("action", cmd.Name),
		zap.Any("params", cmd.Params),
	)
	return h.feed.Publish(cmd.Level, cmd.Message), nil
}
