package detail

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	stA = station{ID: "ST001", Name: "Phoenix Mall Hub"}
	stB = station{ID: "ST002", Name: "Tech Park Station"}
)

func TestState_Variants(t *testing.T) {
	closed := Closed[station]()
	_, ok := closed.Record()
	assert.False(t, ok)
	assert.False(t, closed.IsOpen())

	var zero State[station]
	assert.Equal(t, closed, zero)

	open := Open(stA)
	r, ok := open.Record()
	assert.True(t, ok)
	assert.Equal(t, stA, r)
}

func TestState_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Closed[station]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"open":false}`, string(b))

	b, err = json.Marshal(Open(stA))
	require.NoError(t, err)
	assert.JSONEq(t, `{"open":true,"record":{"id":"ST001","name":"Phoenix Mall Hub"}}`, string(b))
}

func TestShell_InitiallyClosed(t *testing.T) {
	sh := NewShell[station](NewMemoryStore(time.Minute), "stations")
	st, err := sh.State(context.Background(), "viewer-1")
	require.NoError(t, err)
	assert.False(t, st.IsOpen())
}

func TestShell_SelectReplacesSelection(t *testing.T) {
	ctx := context.Background()
	sh := NewShell[station](NewMemoryStore(time.Minute), "stations")

	_, err := sh.Select(ctx, "v", stA)
	require.NoError(t, err)
	got, err := sh.Select(ctx, "v", stB)
	require.NoError(t, err)
	assert.Equal(t, Open(stB), got)

	st, err := sh.State(ctx, "v")
	require.NoError(t, err)
	r, ok := st.Record()
	require.True(t, ok)
	assert.Equal(t, stB, r)
}

func TestShell_Close(t *testing.T) {
	ctx := context.Background()
	sh := NewShell[station](NewMemoryStore(time.Minute), "stations")

	_, err := sh.Select(ctx, "v", stA)
	require.NoError(t, err)
	st, err := sh.Close(ctx, "v")
	require.NoError(t, err)
	assert.False(t, st.IsOpen())

	st, err = sh.State(ctx, "v")
	require.NoError(t, err)
	assert.False(t, st.IsOpen())

	// closing twice is harmless
	_, err = sh.Close(ctx, "v")
	assert.NoError(t, err)
}

func TestShell_IsolatedPerViewerAndCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	stations := NewShell[station](store, "stations")
	chargers := NewShell[station](store, "chargers")

	_, err := stations.Select(ctx, "alice", stA)
	require.NoError(t, err)

	st, err := stations.State(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, st.IsOpen())

	st, err = chargers.State(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, st.IsOpen())
}

func TestShell_SnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	sh := NewShell[station](NewMemoryStore(time.Minute), "stations")

	rec := stA
	_, err := sh.Select(ctx, "v", rec)
	require.NoError(t, err)
	rec.Name = "changed"

	st, err := sh.State(ctx, "v")
	require.NoError(t, err)
	r, _ := st.Record()
	assert.Equal(t, "Phoenix Mall Hub", r.Name)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(20 * time.Millisecond)
	require.NoError(t, m.Set(ctx, "k", []byte("v")))

	time.Sleep(40 * time.Millisecond)
	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingStore struct{}

var errDown = errors.New("store down")

func (failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errDown }
func (failingStore) Set(context.Context, string, []byte) error         { return errDown }
func (failingStore) Delete(context.Context, string) error              { return errDown }

func TestShell_StoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	sh := NewShell[station](failingStore{}, "stations")

	st, err := sh.Select(ctx, "v", stA)
	assert.ErrorIs(t, err, errDown)
	assert.False(t, st.IsOpen())

	_, err = sh.State(ctx, "v")
	assert.ErrorIs(t, err, errDown)

	_, err = sh.Close(ctx, "v")
	assert.ErrorIs(t, err, errDown)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("EVADMIN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EVADMIN_TEST_REDIS_ADDR not set")
	}
	client, err := NewRedisClient(addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	sh := NewShell[station](NewRedisStore(client, time.Minute), "stations")
	_, err = sh.Select(ctx, "redis-test", stA)
	require.NoError(t, err)

	st, err := sh.State(ctx, "redis-test")
	require.NoError(t, err)
	r, ok := st.Record()
	require.True(t, ok)
	assert.Equal(t, stA, r)

	_, err = sh.Close(ctx, "redis-test")
	require.NoError(t, err)
}

func TestNewRedisClient_EmptyAddr(t *testing.T) {
	_, err := NewRedisClient("  ", "", 0)
	assert.Error(t, err)
}
