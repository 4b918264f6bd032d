package leads

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousepro/landing/internal/demo"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetDemoRequest(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	s.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	req := demo.Request{
		Name:       " Ada ",
		Email:      "ada@example.com",
		Company:    "Acme",
		Phone:      "555",
		CurrentERP: "SAP",
		Challenges: []string{"Labor costs", "Space utilization", "Labor costs"},
		Message:    "Pick paths are slow.",
	}
	lead, err := s.SaveDemoRequest(ctx, req)
	require.NoError(t, err)
	assert.Len(t, lead.ID, 36)

	got, err := s.GetDemoRequest(ctx, lead.ID)
	require.NoError(t, err)
	want := &Lead{
		ID: lead.ID,
		Request: demo.Request{
			Name:       "Ada",
			Email:      "ada@example.com",
			Company:    "Acme",
			Phone:      "555",
			CurrentERP: "SAP",
			Challenges: []string{"Labor costs", "Space utilization"},
			Message:    "Pick paths are slow.",
		},
		CreatedAt: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stored lead mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, lead); diff != "" {
		t.Errorf("returned lead mismatch (-want +got):\n%s", diff)
	}

	_, err = s.GetDemoRequest(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListDemoRequests(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	var ids []string
	for _, company := range []string{"First", "Second", "Third"} {
		lead, err := s.SaveDemoRequest(ctx, demo.Request{Name: "n", Email: "e@x.io", Company: company, Phone: "1"})
		require.NoError(t, err)
		ids = append(ids, lead.ID)
	}

	leads, err := s.ListDemoRequests(ctx, 2)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, ids[2], leads[0].ID)
	assert.Equal(t, ids[1], leads[1].ID)
	assert.Empty(t, leads[0].Request.Challenges)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	created, err := s.Subscribe(ctx, "ops@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Subscribe(ctx, " OPS@example.com ")
	require.NoError(t, err)
	assert.False(t, created, "same address in another case is not a new subscriber")

	_, err = s.Subscribe(ctx, "cfo@example.com")
	require.NoError(t, err)

	n, err := s.CountSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOpen_existingDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Ping(ctx))
	n, err := s.CountSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
