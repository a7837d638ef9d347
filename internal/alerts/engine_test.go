package alerts

import (
	"testing"
	"time"

	"fleet-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func scheduledMaintenance(due time.Time) models.MaintenanceRecord {
	return models.MaintenanceRecord{
		ID:            primitive.NewObjectID(),
		VehicleID:     primitive.NewObjectID(),
		Type:          models.MaintenanceTypeGeneral,
		ScheduledDate: due,
		Status:        models.MaintenanceStatusScheduled,
	}
}

func TestDeriveMaintenanceWindow(t *testing.T) {
	tests := []struct {
		name         string
		daysAhead    int
		wantAlert    bool
		wantPriority string
	}{
		{"eight days out is outside the window", 8, false, ""},
		{"seven days out is medium", 7, true, models.PriorityMedium},
		{"four days out is medium", 4, true, models.PriorityMedium},
		{"three days out escalates to high", 3, true, models.PriorityHigh},
		{"one day out is high", 1, true, models.PriorityHigh},
		{"due today never alerts", 0, false, ""},
		{"past due never alerts", -1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{
				Maintenance: []models.MaintenanceRecord{
					scheduledMaintenance(testNow.AddDate(0, 0, tt.daysAhead)),
				},
			}

			alerts, diags := Derive(testNow, snap)
			assert.Empty(t, diags)

			if !tt.wantAlert {
				assert.Empty(t, alerts)
				return
			}

			require.Len(t, alerts, 1)
			assert.Equal(t, models.AlertTypeMaintenanceDue, alerts[0].Type)
			assert.Equal(t, tt.wantPriority, alerts[0].Priority)
			assert.Equal(t, tt.daysAhead, alerts[0].DaysUntilDue)
			assert.Equal(t, models.AlertStatusPending, alerts[0].Status)
		})
	}
}

func TestDeriveAlertDateFollowsPriority(t *testing.T) {
	highDue := testNow.AddDate(0, 0, 2)
	mediumDue := testNow.AddDate(0, 0, 6)

	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			scheduledMaintenance(highDue),
			scheduledMaintenance(mediumDue),
		},
	}

	alerts, _ := Derive(testNow, snap)
	require.Len(t, alerts, 2)

	// High priority alerts lead notice by 3 days, medium by 7.
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, 3, alerts[0].DaysBefore)
	assert.Equal(t, highDue.AddDate(0, 0, -3), alerts[0].AlertDate)

	assert.Equal(t, models.PriorityMedium, alerts[1].Priority)
	assert.Equal(t, 7, alerts[1].DaysBefore)
	assert.Equal(t, mediumDue.AddDate(0, 0, -7), alerts[1].AlertDate)
}

func TestDeriveSkipsNonScheduledMaintenance(t *testing.T) {
	record := scheduledMaintenance(testNow.AddDate(0, 0, 2))
	record.Status = models.MaintenanceStatusCompleted

	alerts, diags := Derive(testNow, Snapshot{Maintenance: []models.MaintenanceRecord{record}})
	assert.Empty(t, alerts)
	assert.Empty(t, diags)
}

func TestDeriveOilChange(t *testing.T) {
	next := testNow.AddDate(0, 0, 5)

	t.Run("with next date in window", func(t *testing.T) {
		record := models.OilChangeRecord{
			ID:                primitive.NewObjectID(),
			VehicleID:         primitive.NewObjectID(),
			NextOilChangeDate: &next,
		}

		alerts, diags := Derive(testNow, Snapshot{OilChanges: []models.OilChangeRecord{record}})
		assert.Empty(t, diags)
		require.Len(t, alerts, 1)
		assert.Equal(t, models.AlertTypeOilChangeDue, alerts[0].Type)
		assert.Equal(t, models.PriorityMedium, alerts[0].Priority)
	})

	t.Run("nil next date is silent", func(t *testing.T) {
		record := models.OilChangeRecord{
			ID:        primitive.NewObjectID(),
			VehicleID: primitive.NewObjectID(),
		}

		alerts, diags := Derive(testNow, Snapshot{OilChanges: []models.OilChangeRecord{record}})
		assert.Empty(t, alerts)
		assert.Empty(t, diags)
	})

	t.Run("zero next date yields a diagnostic", func(t *testing.T) {
		var zero time.Time
		record := models.OilChangeRecord{
			ID:                primitive.NewObjectID(),
			VehicleID:         primitive.NewObjectID(),
			NextOilChangeDate: &zero,
		}

		alerts, diags := Derive(testNow, Snapshot{OilChanges: []models.OilChangeRecord{record}})
		assert.Empty(t, alerts)
		require.Len(t, diags, 1)
		assert.Equal(t, "oil_change", diags[0].RecordType)
	})
}

func TestDeriveInsuranceIgnoresPolicyStatus(t *testing.T) {
	policy := models.InsurancePolicy{
		ID:        primitive.NewObjectID(),
		VehicleID: primitive.NewObjectID(),
		Company:   "Acme Insurance",
		EndDate:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Status:    models.InsuranceStatusCancelled,
	}

	alerts, diags := Derive(testNow, Snapshot{Insurance: []models.InsurancePolicy{policy}})
	assert.Empty(t, diags)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, models.AlertTypeInsuranceExpiry, a.Type)
	assert.Equal(t, 4, a.DaysUntilDue)
	assert.Equal(t, models.PriorityMedium, a.Priority)
	assert.Equal(t, 7, a.DaysBefore)
	assert.Equal(t, time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC), a.AlertDate)
	assert.Contains(t, a.Message, "Acme Insurance")
}

func TestDeriveInspectionWindow(t *testing.T) {
	inspection := models.TechnicalInspection{
		ID:         primitive.NewObjectID(),
		VehicleID:  primitive.NewObjectID(),
		ExpiryDate: testNow.AddDate(0, 0, 2),
		Result:     models.InspectionResultPassed,
	}

	alerts, _ := Derive(testNow, Snapshot{Inspections: []models.TechnicalInspection{inspection}})
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeInspectionExpiry, alerts[0].Type)
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
}

func TestDeriveLicenseWindow(t *testing.T) {
	tests := []struct {
		name         string
		daysAhead    int
		wantAlert    bool
		wantPriority string
	}{
		{"thirty-one days out is outside the window", 31, false, ""},
		{"thirty days out is medium", 30, true, models.PriorityMedium},
		{"twenty days out is medium", 20, true, models.PriorityMedium},
		{"seven days out escalates to high", 7, true, models.PriorityHigh},
		{"five days out is high", 5, true, models.PriorityHigh},
		{"expired license never alerts", -10, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := models.Driver{
				ID:                primitive.NewObjectID(),
				FirstName:         "Maria",
				LastName:          "Santos",
				LicenseExpiryDate: testNow.AddDate(0, 0, tt.daysAhead),
				Status:            models.DriverStatusActive,
			}

			alerts, diags := Derive(testNow, Snapshot{Drivers: []models.Driver{driver}})
			assert.Empty(t, diags)

			if !tt.wantAlert {
				assert.Empty(t, alerts)
				return
			}

			require.Len(t, alerts, 1)
			assert.Equal(t, models.AlertTypeLicenseExpiry, alerts[0].Type)
			assert.Equal(t, tt.wantPriority, alerts[0].Priority)
			assert.Contains(t, alerts[0].Message, "Maria Santos")
		})
	}
}

func TestDeriveSortsPriorityThenDueDate(t *testing.T) {
	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			scheduledMaintenance(testNow.AddDate(0, 0, 6)),
			scheduledMaintenance(testNow.AddDate(0, 0, 2)),
			scheduledMaintenance(testNow.AddDate(0, 0, 5)),
			scheduledMaintenance(testNow.AddDate(0, 0, 1)),
		},
	}

	alerts, _ := Derive(testNow, snap)
	require.Len(t, alerts, 4)

	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, 1, alerts[0].DaysUntilDue)
	assert.Equal(t, models.PriorityHigh, alerts[1].Priority)
	assert.Equal(t, 2, alerts[1].DaysUntilDue)
	assert.Equal(t, models.PriorityMedium, alerts[2].Priority)
	assert.Equal(t, 5, alerts[2].DaysUntilDue)
	assert.Equal(t, models.PriorityMedium, alerts[3].Priority)
	assert.Equal(t, 6, alerts[3].DaysUntilDue)
}

func TestDeriveHighSortsBeforeEarlierDueMedium(t *testing.T) {
	// License seven days out is high; maintenance five days out is medium.
	// Priority is the major sort key, so the later-due high alert comes first.
	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			scheduledMaintenance(testNow.AddDate(0, 0, 5)),
		},
		Drivers: []models.Driver{
			{
				ID:                primitive.NewObjectID(),
				FirstName:         "Lena",
				LastName:          "Berg",
				LicenseExpiryDate: testNow.AddDate(0, 0, 7),
				Status:            models.DriverStatusActive,
			},
		},
	}

	alerts, diags := Derive(testNow, snap)
	assert.Empty(t, diags)
	require.Len(t, alerts, 2)

	assert.Equal(t, models.AlertTypeLicenseExpiry, alerts[0].Type)
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, 7, alerts[0].DaysUntilDue)

	assert.Equal(t, models.AlertTypeMaintenanceDue, alerts[1].Type)
	assert.Equal(t, models.PriorityMedium, alerts[1].Priority)
	assert.Equal(t, 5, alerts[1].DaysUntilDue)
	assert.True(t, alerts[0].DueDate.After(alerts[1].DueDate))
}

func TestDeriveIsDeterministic(t *testing.T) {
	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			scheduledMaintenance(testNow.AddDate(0, 0, 2)),
			scheduledMaintenance(testNow.AddDate(0, 0, 6)),
		},
		Drivers: []models.Driver{
			{
				ID:                primitive.NewObjectID(),
				FirstName:         "Jan",
				LastName:          "Novak",
				LicenseExpiryDate: testNow.AddDate(0, 0, 14),
			},
		},
	}

	first, _ := Derive(testNow, snap)
	second, _ := Derive(testNow, snap)
	assert.Equal(t, first, second)
}

func TestDeriveDeduplicatesByCompositeID(t *testing.T) {
	record := scheduledMaintenance(testNow.AddDate(0, 0, 2))

	alerts, _ := Derive(testNow, Snapshot{
		Maintenance: []models.MaintenanceRecord{record, record},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, CompositeID(models.AlertTypeMaintenanceDue, record.ID.Hex()), alerts[0].ID)
}

func TestDeriveVehicleLabels(t *testing.T) {
	record := scheduledMaintenance(testNow.AddDate(0, 0, 2))

	t.Run("known vehicle uses its label", func(t *testing.T) {
		snap := Snapshot{
			Maintenance:   []models.MaintenanceRecord{record},
			VehicleLabels: map[string]string{record.VehicleID.Hex(): "Ford Transit (AB-123-CD)"},
		}

		alerts, _ := Derive(testNow, snap)
		require.Len(t, alerts, 1)
		assert.Contains(t, alerts[0].Message, "Ford Transit (AB-123-CD)")
	})

	t.Run("missing vehicle falls back", func(t *testing.T) {
		alerts, _ := Derive(testNow, Snapshot{Maintenance: []models.MaintenanceRecord{record}})
		require.Len(t, alerts, 1)
		assert.Contains(t, alerts[0].Message, UnknownVehicleName)
	})
}

func TestDeriveBadRecordDoesNotAbortBatch(t *testing.T) {
	good := scheduledMaintenance(testNow.AddDate(0, 0, 2))
	bad := scheduledMaintenance(time.Time{})

	alerts, diags := Derive(testNow, Snapshot{
		Maintenance: []models.MaintenanceRecord{bad, good},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, good.ID.Hex(), alerts[0].RelatedID)
	require.Len(t, diags, 1)
	assert.Equal(t, bad.ID.Hex(), diags[0].RecordID)
	assert.Equal(t, "maintenance", diags[0].RecordType)
}

func TestDaysUntilRoundsUp(t *testing.T) {
	noon := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	target := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	// 6.5 days rounds up to 7
	assert.Equal(t, 7, DaysUntil(noon, target))
	assert.Equal(t, 0, DaysUntil(noon, noon))
	assert.Equal(t, -1, DaysUntil(noon, noon.AddDate(0, 0, -2).Add(12*time.Hour)))
}
