package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/notification"
)

var errMissing = errors.New("no such record")

type fakeResolver map[string]map[string]Subject

func (f fakeResolver) Subject(_ context.Context, collection, id string) (Subject, error) {
	s, ok := f[collection][id]
	if !ok {
		return nil, errMissing
	}
	return s, nil
}

var resolver = fakeResolver{
	"stations": {
		"ST003": {"id": "ST003", "name": "Airport Express"},
	},
	"users": {
		"U002": {"id": "U002", "name": "Priya Sharma", "email": "priya.sharma@email.com"},
	},
	"tickets": {
		"TKT001": {"id": "TKT001", "name": "Charger not starting session"},
	},
	"settlements": {
		"PAY002": {"id": "PAY002", "name": "ChargeTech Solutions"},
	},
	"sessions": {
		"SS001": {"id": "SS001", "user": "Rahul Sharma"},
	},
}

func newDispatcher() (*Dispatcher, *notification.Feed) {
	feed := notification.NewFeed(time.Minute)
	return NewDispatcher(resolver, NewNotifyHandler(feed, zap.NewNop())), feed
}

func TestDispatch_Messages(t *testing.T) {
	testCases := []struct {
		name      string
		action    Action
		wantLevel notification.Level
		wantMsg   string
	}{
		{
			name:      "station maintenance",
			action:    Action{Collection: "stations", RecordID: "ST003", Name: "maintenance"},
			wantLevel: notification.LevelWarning,
			wantMsg:   "Scheduling maintenance for Airport Express",
		},
		{
			name:      "station delete",
			action:    Action{Collection: "stations", RecordID: "ST003", Name: "delete"},
			wantLevel: notification.LevelError,
			wantMsg:   "Delete request for station: Airport Express",
		},
		{
			name:      "user contact uses email",
			action:    Action{Collection: "users", RecordID: "U002", Name: "contact"},
			wantLevel: notification.LevelInfo,
			wantMsg:   "Contacting Priya Sharma via priya.sharma@email.com",
		},
		{
			name:      "camel case name is normalized",
			action:    Action{Collection: "settlements", RecordID: "PAY002", Name: "processPayout"},
			wantLevel: notification.LevelSuccess,
			wantMsg:   "Processing payout PAY002",
		},
		{
			name: "ticket status update reads params",
			action: Action{Collection: "tickets", RecordID: "TKT001", Name: "update_status",
				Params: map[string]string{"status": "resolved"}},
			wantLevel: notification.LevelInfo,
			wantMsg:   "Updating ticket TKT001 status to resolved",
		},
		{
			name:      "session contact",
			action:    Action{Collection: "sessions", RecordID: "SS001", Name: "contact"},
			wantLevel: notification.LevelInfo,
			wantMsg:   "Contacting Rahul Sharma...",
		},
		{
			name:      "create needs no record",
			action:    Action{Collection: "stations", Name: "create"},
			wantLevel: notification.LevelSuccess,
			wantMsg:   "Station created successfully!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, feed := newDispatcher()
			toast, err := d.Dispatch(context.Background(), tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, toast.Level)
			assert.Equal(t, tc.wantMsg, toast.Message)

			list := feed.List()
			require.Len(t, list, 1)
			assert.Equal(t, toast.ID, list[0].ID)
		})
	}
}

func TestDispatch_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		action  Action
		wantErr error
	}{
		{"unregistered action", Action{Collection: "stations", RecordID: "ST003", Name: "explode"}, ErrUnknownAction},
		{"unknown collection", Action{Collection: "dorms", RecordID: "1", Name: "edit"}, ErrUnknownAction},
		{"record action without record", Action{Collection: "stations", Name: "edit"}, ErrUnknownAction},
		{"collection action with record", Action{Collection: "stations", RecordID: "ST003", Name: "create"}, ErrUnknownAction},
		{"unknown record", Action{Collection: "stations", RecordID: "ST999", Name: "edit"}, errMissing},
		{"missing param", Action{Collection: "tickets", RecordID: "TKT001", Name: "assign"}, ErrMissingParam},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, feed := newDispatcher()
			_, err := d.Dispatch(context.Background(), tc.action)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, feed.List(), "failed actions publish nothing")
		})
	}
}

func TestExecute_SatisfiesCommander(t *testing.T) {
	d, feed := newDispatcher()
	err := d.Execute(context.Background(), Action{Collection: "activities", RecordID: "1", Name: "acknowledge"})
	assert.ErrorIs(t, err, errMissing)

	err = d.Execute(context.Background(), Action{Collection: "users", Name: "export"})
	require.NoError(t, err)
	assert.Equal(t, "Exporting user data...", feed.List()[0].Message)
}

func TestDispatch_DoesNotMutateSubject(t *testing.T) {
	d, _ := newDispatcher()
	before := Subject{}
	for k, v := range resolver["stations"]["ST003"] {
		before[k] = v
	}

	for _, name := range []string{"edit", "maintenance", "restart", "contact", "delete"} {
		_, err := d.Dispatch(context.Background(), Action{Collection: "stations", RecordID: "ST003", Name: name})
		require.NoError(t, err)
	}
	assert.Equal(t, before, resolver["stations"]["ST003"])
}

func TestActionsQuery(t *testing.T) {
	set, err := ActionsQuery{}.Query(context.Background(), "stations")
	require.NoError(t, err)
	assert.Equal(t, []string{"contact", "delete", "edit", "maintenance", "restart"}, set.Record)
	assert.Equal(t, []string{"create", "export"}, set.Collection)

	set, err = ActionsQuery{}.Query(context.Background(), "wallets")
	require.NoError(t, err)
	assert.Empty(t, set.Record)
	assert.NotNil(t, set.Collection)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "process-payout", Normalize("processPayout"))
	assert.Equal(t, "regenerate-credentials", Normalize("regenerate_credentials"))
	assert.Equal(t, "test-connection", Normalize("test-connection"))
	assert.True(t, IsCollectionLevel("Create"))
	assert.False(t, IsCollectionLevel("edit"))
}
