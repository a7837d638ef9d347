package alerts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fleet-admin/internal/models"
)

// Window rules: every record type except driver licenses alerts within 7 days
// of its due date, escalating to high priority at 3 days. Licenses use a
// 30-day horizon and escalate at 7.
const (
	DefaultWindowDays  = 7
	LicenseWindowDays  = 30
	HighThresholdDays  = 3
	LicenseHighDays    = 7
	UnknownVehicleName = "unknown vehicle"
)

// Snapshot is the read-only set of source records for a single derivation
// pass. VehicleLabels maps vehicle id (hex) to a display label.
type Snapshot struct {
	Maintenance   []models.MaintenanceRecord
	OilChanges    []models.OilChangeRecord
	Insurance     []models.InsurancePolicy
	Inspections   []models.TechnicalInspection
	Drivers       []models.Driver
	VehicleLabels map[string]string
}

// Diagnostic describes a source record skipped during derivation. Skipping is
// per-record; a bad record never aborts the batch.
type Diagnostic struct {
	RecordID   string `json:"recordId"`
	RecordType string `json:"recordType"`
	Reason     string `json:"reason"`
}

// Derive maps the injected "now" and a record snapshot to an ordered alert
// list: priority-major (high < medium < low), due-date-minor. It is pure and
// idempotent; calling it twice with the same inputs yields identical output.
func Derive(now time.Time, snap Snapshot) ([]models.Alert, []Diagnostic) {
	var (
		out   []models.Alert
		diags []Diagnostic
		seen  = make(map[string]bool)
	)

	add := func(a models.Alert) {
		if seen[a.ID] {
			return
		}
		seen[a.ID] = true
		out = append(out, a)
	}

	for _, m := range snap.Maintenance {
		if m.Status != models.MaintenanceStatusScheduled {
			continue
		}
		if m.ScheduledDate.IsZero() {
			diags = append(diags, Diagnostic{m.ID.Hex(), "maintenance", "scheduled date missing or invalid"})
			continue
		}
		d := DaysUntil(now, m.ScheduledDate)
		if !inWindow(d, DefaultWindowDays) {
			continue
		}
		vehicleID := m.VehicleID.Hex()
		add(buildAlert(models.AlertTypeMaintenanceDue, m.ID.Hex(), "maintenance", vehicleID,
			m.ScheduledDate, d, HighThresholdDays,
			"Maintenance due",
			fmt.Sprintf("Scheduled maintenance for %s is due in %d day(s)", label(snap, vehicleID), d)))
	}

	for _, o := range snap.OilChanges {
		// No next date known means no reminder, not an error.
		if o.NextOilChangeDate == nil {
			continue
		}
		if o.NextOilChangeDate.IsZero() {
			diags = append(diags, Diagnostic{o.ID.Hex(), "oil_change", "next oil change date invalid"})
			continue
		}
		d := DaysUntil(now, *o.NextOilChangeDate)
		if !inWindow(d, DefaultWindowDays) {
			continue
		}
		vehicleID := o.VehicleID.Hex()
		add(buildAlert(models.AlertTypeOilChangeDue, o.ID.Hex(), "oil_change", vehicleID,
			*o.NextOilChangeDate, d, HighThresholdDays,
			"Oil change due",
			fmt.Sprintf("Oil change for %s is due in %d day(s)", label(snap, vehicleID), d)))
	}

	for _, p := range snap.Insurance {
		// End date drives the window regardless of the policy status field.
		if p.EndDate.IsZero() {
			diags = append(diags, Diagnostic{p.ID.Hex(), "insurance", "end date missing or invalid"})
			continue
		}
		d := DaysUntil(now, p.EndDate)
		if !inWindow(d, DefaultWindowDays) {
			continue
		}
		vehicleID := p.VehicleID.Hex()
		add(buildAlert(models.AlertTypeInsuranceExpiry, p.ID.Hex(), "insurance", vehicleID,
			p.EndDate, d, HighThresholdDays,
			"Insurance expiring",
			fmt.Sprintf("%s insurance policy for %s expires in %d day(s)", p.Company, label(snap, vehicleID), d)))
	}

	for _, i := range snap.Inspections {
		if i.ExpiryDate.IsZero() {
			diags = append(diags, Diagnostic{i.ID.Hex(), "inspection", "expiry date missing or invalid"})
			continue
		}
		d := DaysUntil(now, i.ExpiryDate)
		if !inWindow(d, DefaultWindowDays) {
			continue
		}
		vehicleID := i.VehicleID.Hex()
		add(buildAlert(models.AlertTypeInspectionExpiry, i.ID.Hex(), "inspection", vehicleID,
			i.ExpiryDate, d, HighThresholdDays,
			"Technical inspection expiring",
			fmt.Sprintf("Technical inspection for %s expires in %d day(s)", label(snap, vehicleID), d)))
	}

	for _, dr := range snap.Drivers {
		if dr.LicenseExpiryDate.IsZero() {
			diags = append(diags, Diagnostic{dr.ID.Hex(), "driver", "license expiry date missing or invalid"})
			continue
		}
		d := DaysUntil(now, dr.LicenseExpiryDate)
		if !inWindow(d, LicenseWindowDays) {
			continue
		}
		add(buildAlert(models.AlertTypeLicenseExpiry, dr.ID.Hex(), "driver", "",
			dr.LicenseExpiryDate, d, LicenseHighDays,
			"Driver license expiring",
			fmt.Sprintf("Driver license of %s expires in %d day(s)", dr.FullName(), d)))
	}

	sortAlerts(out)
	return out, diags
}

// CompositeID forms the deterministic alert id from type and source record
// id. The status overlay is keyed by it so user actions survive re-derivation.
func CompositeID(alertType, recordID string) string {
	return alertType + "-" + recordID
}

func buildAlert(alertType, recordID, recordKind, vehicleID string, due time.Time, days, highThreshold int, title, message string) models.Alert {
	priority := models.PriorityMedium
	daysBefore := DefaultWindowDays
	if days <= highThreshold {
		priority = models.PriorityHigh
		daysBefore = HighThresholdDays
	}
	return models.Alert{
		ID:           CompositeID(alertType, recordID),
		Type:         alertType,
		Title:        title,
		Message:      message,
		RelatedID:    recordID,
		RelatedType:  recordKind,
		VehicleID:    vehicleID,
		DueDate:      due,
		AlertDate:    due.AddDate(0, 0, -daysBefore),
		Priority:     priority,
		Status:       models.AlertStatusPending,
		DaysBefore:   daysBefore,
		DaysUntilDue: days,
	}
}

// DaysUntil is ceil((target - now) / 24h). A record due today (0) or in the
// past (negative) never alerts; only strictly future in-window dates do.
func DaysUntil(now, target time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

func inWindow(days, window int) bool {
	return days > 0 && days <= window
}

func label(snap Snapshot, vehicleID string) string {
	if l, ok := snap.VehicleLabels[vehicleID]; ok && l != "" {
		return l
	}
	return UnknownVehicleName
}

var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

func sortAlerts(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := priorityRank[alerts[i].Priority], priorityRank[alerts[j].Priority]
		if ri != rj {
			return ri < rj
		}
		return alerts[i].DueDate.Before(alerts[j].DueDate)
	})
}
