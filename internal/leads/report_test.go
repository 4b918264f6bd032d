package leads

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousepro/landing/internal/demo"
)

func TestWriteReport(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	s.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	_, err := s.SaveDemoRequest(ctx, demo.Request{Name: "Ada", Email: "ada@example.com", Company: "Acme", Phone: "1",
		Challenges: []string{"Labor costs"}})
	require.NoError(t, err)
	_, err = s.SaveDemoRequest(ctx, demo.Request{Name: "Grace", Email: "grace@example.com", Company: "Navy", Phone: "2"})
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, "ops@example.com")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, s.WriteReport(ctx, &b, 10))
	out := b.String()
	assert.Contains(t, out, "newsletter subscribers: 1\n")
	assert.Contains(t, out, "2025-03-04 05:06:07")
	assert.Contains(t, out, "Labor costs")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5) // count, blank, header, two leads
	assert.Contains(t, lines[3], "Navy", "newest first")
	assert.Contains(t, lines[4], "Acme")

	b.Reset()
	require.NoError(t, s.WriteReport(ctx, &b, 1))
	assert.NotContains(t, b.String(), "Acme")
}

func TestWriteLead(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lead, err := s.SaveDemoRequest(ctx, demo.Request{Name: "Ada", Email: "ada@example.com", Company: "Acme", Phone: "1",
		Message: "Pick paths are slow."})
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, s.WriteLead(ctx, &b, lead.ID))
	assert.True(t, strings.HasPrefix(b.String(), "Demo request: Acme (Ada)\n"), b.String())
	assert.Contains(t, b.String(), "Pick paths are slow.")
	assert.Contains(t, b.String(), lead.ID)

	require.ErrorIs(t, s.WriteLead(ctx, &b, "missing"), ErrNotFound)
}
