package services

import (
	"testing"
	"time"

	"fleet-admin/internal/alerts"
	"fleet-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFeedDerivesAgainstGeneratedAt(t *testing.T) {
	// A record exactly on the window boundary only alerts when the snapshot
	// cutoff and the derivation use the same instant.
	now := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	snap := alerts.Snapshot{
		Maintenance: []models.MaintenanceRecord{
			{
				ID:            primitive.NewObjectID(),
				VehicleID:     primitive.NewObjectID(),
				Type:          "inspection",
				ScheduledDate: now.AddDate(0, 0, alerts.DefaultWindowDays),
				Status:        models.MaintenanceStatusScheduled,
			},
		},
	}

	feed := buildFeed(now, snap, nil, nil)

	require.Len(t, feed.Alerts, 1)
	assert.Equal(t, now, feed.GeneratedAt)
	assert.Equal(t, alerts.DaysUntil(feed.GeneratedAt, feed.Alerts[0].DueDate), feed.Alerts[0].DaysUntilDue)
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestBuildFeedAppliesOverlay(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	record := models.MaintenanceRecord{
		ID:            primitive.NewObjectID(),
		VehicleID:     primitive.NewObjectID(),
		Type:          "repair",
		ScheduledDate: now.AddDate(0, 0, 2),
		Status:        models.MaintenanceStatusScheduled,
	}
	snap := alerts.Snapshot{Maintenance: []models.MaintenanceRecord{record}}

	id := alerts.CompositeID(models.AlertTypeMaintenanceDue, record.ID.Hex())
	feed := buildFeed(now, snap, map[string]string{id: models.AlertStatusDismissed}, map[string]bool{id: true})

	require.Len(t, feed.Alerts, 1)
	assert.Equal(t, models.AlertStatusDismissed, feed.Alerts[0].Status)
	assert.True(t, feed.Alerts[0].Read)
	assert.Equal(t, 0, feed.UnreadCount)
}
