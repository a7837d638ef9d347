package services

import (
	"context"
	"errors"
	"time"

	"fleet-admin/internal/alerts"
	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"
	"fleet-admin/pkg/email"
)

// AlertService derives the notification feed from the record stores and
// overlays the persisted read/dismiss state. Alerts are never stored; only
// the overlay is.
type AlertService struct {
	serviceRepo   *repository.ServiceRepository
	insuranceRepo *repository.InsuranceRepository
	driverRepo    *repository.DriverRepository
	vehicleRepo   *repository.VehicleRepository
	overlay       *alerts.OverlayStore
	emailService  *email.EmailService
	now           func() time.Time
}

func NewAlertService(
	serviceRepo *repository.ServiceRepository,
	insuranceRepo *repository.InsuranceRepository,
	driverRepo *repository.DriverRepository,
	vehicleRepo *repository.VehicleRepository,
	overlay *alerts.OverlayStore,
) *AlertService {
	return &AlertService{
		serviceRepo:   serviceRepo,
		insuranceRepo: insuranceRepo,
		driverRepo:    driverRepo,
		vehicleRepo:   vehicleRepo,
		overlay:       overlay,
		now:           time.Now,
	}
}

// SetEmailService enables the expiry digest email.
func (s *AlertService) SetEmailService(emailService *email.EmailService) {
	s.emailService = emailService
}

// SetClock overrides the time source. Used by tests.
func (s *AlertService) SetClock(now func() time.Time) {
	s.now = now
}

// AlertFeed is the full notification payload returned to the UI.
type AlertFeed struct {
	Alerts      []models.Alert      `json:"alerts"`
	UnreadCount int                 `json:"unreadCount"`
	Diagnostics []alerts.Diagnostic `json:"diagnostics,omitempty"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// snapshot loads every record that could produce an alert within its window.
// The engine re-checks each date precisely; the cutoffs only bound the reads.
func (s *AlertService) snapshot(now time.Time) (alerts.Snapshot, error) {
	snap := alerts.Snapshot{}

	maintenance, err := s.serviceRepo.FindScheduledMaintenanceBefore(now.AddDate(0, 0, alerts.DefaultWindowDays))
	if err != nil {
		return snap, err
	}
	for _, m := range maintenance {
		snap.Maintenance = append(snap.Maintenance, *m)
	}

	oilChanges, err := s.serviceRepo.FindOilChangesDueBefore(now.AddDate(0, 0, alerts.DefaultWindowDays))
	if err != nil {
		return snap, err
	}
	for _, o := range oilChanges {
		snap.OilChanges = append(snap.OilChanges, *o)
	}

	policies, err := s.insuranceRepo.FindPoliciesExpiringBefore(now.AddDate(0, 0, alerts.DefaultWindowDays))
	if err != nil {
		return snap, err
	}
	for _, p := range policies {
		snap.Insurance = append(snap.Insurance, *p)
	}

	inspections, err := s.insuranceRepo.FindInspectionsExpiringBefore(now.AddDate(0, 0, alerts.DefaultWindowDays))
	if err != nil {
		return snap, err
	}
	for _, i := range inspections {
		snap.Inspections = append(snap.Inspections, *i)
	}

	drivers, err := s.driverRepo.FindLicensesExpiringBefore(now.AddDate(0, 0, alerts.LicenseWindowDays))
	if err != nil {
		return snap, err
	}
	for _, d := range drivers {
		snap.Drivers = append(snap.Drivers, *d)
	}

	labels, err := s.vehicleRepo.LabelMap()
	if err != nil {
		return snap, err
	}
	snap.VehicleLabels = labels

	return snap, nil
}

// GetFeed derives the current alert list and applies the overlay. The clock
// is sampled once so the snapshot cutoffs and the derivation agree on "now"
// even when the call straddles a day boundary.
func (s *AlertService) GetFeed(ctx context.Context) (*AlertFeed, error) {
	now := s.now()
	snap, err := s.snapshot(now)
	if err != nil {
		return nil, err
	}

	statuses, err := s.overlay.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	readIDs, err := s.overlay.ReadIDs(ctx)
	if err != nil {
		return nil, err
	}

	return buildFeed(now, snap, statuses, readIDs), nil
}

// buildFeed derives alerts from the snapshot and applies the overlay, all
// against the one timestamp the snapshot was loaded for.
func buildFeed(now time.Time, snap alerts.Snapshot, statuses map[string]string, readIDs map[string]bool) *AlertFeed {
	derived, diags := alerts.Derive(now, snap)
	unread := alerts.Merge(derived, statuses, readIDs)

	return &AlertFeed{
		Alerts:      derived,
		UnreadCount: unread,
		Diagnostics: diags,
		GeneratedAt: now,
	}
}

func (s *AlertService) GetUnreadCount(ctx context.Context) (int, error) {
	feed, err := s.GetFeed(ctx)
	if err != nil {
		return 0, err
	}
	return feed.UnreadCount, nil
}

// activeIDs returns the composite ids of currently derived alerts.
func (s *AlertService) activeIDs() (map[string]bool, []string, error) {
	now := s.now()
	snap, err := s.snapshot(now)
	if err != nil {
		return nil, nil, err
	}

	derived, _ := alerts.Derive(now, snap)

	set := make(map[string]bool, len(derived))
	ids := make([]string, 0, len(derived))
	for _, a := range derived {
		set[a.ID] = true
		ids = append(ids, a.ID)
	}
	return set, ids, nil
}

func (s *AlertService) requireActive(alertID string) error {
	active, _, err := s.activeIDs()
	if err != nil {
		return err
	}
	if !active[alertID] {
		return errors.New("alert not found")
	}
	return nil
}

func (s *AlertService) MarkRead(ctx context.Context, alertID string) error {
	if err := s.requireActive(alertID); err != nil {
		return err
	}
	return s.overlay.MarkRead(ctx, alertID)
}

func (s *AlertService) MarkAllRead(ctx context.Context) error {
	_, ids, err := s.activeIDs()
	if err != nil {
		return err
	}
	return s.overlay.MarkAllRead(ctx, ids)
}

func (s *AlertService) DismissAlert(ctx context.Context, alertID string) error {
	if err := s.requireActive(alertID); err != nil {
		return err
	}
	return s.overlay.Dismiss(ctx, alertID)
}

func (s *AlertService) CompleteAlert(ctx context.Context, alertID string) error {
	if err := s.requireActive(alertID); err != nil {
		return err
	}
	return s.overlay.Complete(ctx, alertID)
}

// PruneOverlay drops overlay entries whose alerts are no longer derived.
// Satisfies cleanup.Pruner.
func (s *AlertService) PruneOverlay(ctx context.Context) (int, error) {
	_, ids, err := s.activeIDs()
	if err != nil {
		return 0, err
	}
	return s.overlay.Prune(ctx, ids)
}

// SendDigest emails the pending alerts to a fleet manager.
func (s *AlertService) SendDigest(ctx context.Context, to string) error {
	if s.emailService == nil {
		return errors.New("email service not configured")
	}

	feed, err := s.GetFeed(ctx)
	if err != nil {
		return err
	}

	var digest []email.DigestAlert
	for _, a := range feed.Alerts {
		if a.Status != models.AlertStatusPending {
			continue
		}
		digest = append(digest, email.DigestAlert{
			Title:         a.Title,
			Message:       a.Message,
			Priority:      a.Priority,
			PriorityLabel: models.DescriptorFor(models.AlertPriorityDescriptors, a.Priority).Label,
			DueDate:       a.DueDate.Format("2006-01-02"),
		})
	}

	if len(digest) == 0 {
		return nil
	}

	return s.emailService.SendAlertDigest(to, digest)
}
