package alerts

import (
	"context"
	"testing"

	"fleet-admin/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOverlay(t *testing.T) *OverlayStore {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewOverlayStore(client, "test:")
}

func pendingAlert(id string) models.Alert {
	return models.Alert{ID: id, Status: models.AlertStatusPending}
}

func TestOverlaySurvivesRederivation(t *testing.T) {
	store := setupOverlay(t)
	ctx := context.Background()

	require.NoError(t, store.Dismiss(ctx, "insurance_expiry-abc"))
	require.NoError(t, store.MarkRead(ctx, "maintenance_due-def"))

	// A fresh derivation pass always starts from pending/unread.
	alerts := []models.Alert{
		pendingAlert("insurance_expiry-abc"),
		pendingAlert("maintenance_due-def"),
		pendingAlert("oil_change_due-ghi"),
	}

	statuses, err := store.Statuses(ctx)
	require.NoError(t, err)
	readIDs, err := store.ReadIDs(ctx)
	require.NoError(t, err)

	unread := Merge(alerts, statuses, readIDs)

	assert.Equal(t, models.AlertStatusDismissed, alerts[0].Status)
	assert.False(t, alerts[0].Read)
	assert.Equal(t, models.AlertStatusPending, alerts[1].Status)
	assert.True(t, alerts[1].Read)
	assert.Equal(t, models.AlertStatusPending, alerts[2].Status)
	assert.False(t, alerts[2].Read)

	// Only the untouched pending alert counts as unread.
	assert.Equal(t, 1, unread)
}

func TestOverlayComplete(t *testing.T) {
	store := setupOverlay(t)
	ctx := context.Background()

	require.NoError(t, store.Complete(ctx, "maintenance_due-abc"))

	statuses, err := store.Statuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCompleted, statuses["maintenance_due-abc"])
}

func TestOverlayMarkAllRead(t *testing.T) {
	store := setupOverlay(t)
	ctx := context.Background()

	ids := []string{"a-1", "b-2", "c-3"}
	require.NoError(t, store.MarkAllRead(ctx, ids))

	readIDs, err := store.ReadIDs(ctx)
	require.NoError(t, err)
	for _, id := range ids {
		assert.True(t, readIDs[id])
	}

	alerts := []models.Alert{pendingAlert("a-1"), pendingAlert("b-2"), pendingAlert("c-3")}
	unread := Merge(alerts, nil, readIDs)
	assert.Equal(t, 0, unread)
}

func TestOverlayMarkAllReadEmpty(t *testing.T) {
	store := setupOverlay(t)
	assert.NoError(t, store.MarkAllRead(context.Background(), nil))
}

func TestOverlayPruneDropsStaleEntries(t *testing.T) {
	store := setupOverlay(t)
	ctx := context.Background()

	require.NoError(t, store.Dismiss(ctx, "stale-1"))
	require.NoError(t, store.Dismiss(ctx, "live-1"))
	require.NoError(t, store.MarkRead(ctx, "stale-2"))
	require.NoError(t, store.MarkRead(ctx, "live-2"))

	removed, err := store.Prune(ctx, []string{"live-1", "live-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	statuses, err := store.Statuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"live-1": models.AlertStatusDismissed}, statuses)

	readIDs, err := store.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"live-2": true}, readIDs)
}

func TestMergeUnreadCountsOnlyPending(t *testing.T) {
	alerts := []models.Alert{
		pendingAlert("a-1"),
		pendingAlert("b-2"),
		pendingAlert("c-3"),
	}
	statuses := map[string]string{"b-2": models.AlertStatusCompleted}
	readIDs := map[string]bool{"c-3": true}

	unread := Merge(alerts, statuses, readIDs)
	assert.Equal(t, 1, unread)
}
