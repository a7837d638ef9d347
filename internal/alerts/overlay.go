package alerts

import (
	"context"
	"fmt"
	"time"

	"fleet-admin/internal/models"

	"github.com/redis/go-redis/v9"
)

// OverlayStore persists user actions on derived alerts (read flags and
// dismissed/completed status) keyed by the deterministic composite id, so
// they survive every re-derivation pass.
type OverlayStore struct {
	client    *redis.Client
	keyPrefix string
}

func NewOverlayStore(client *redis.Client, keyPrefix string) *OverlayStore {
	if keyPrefix == "" {
		keyPrefix = "fleet:"
	}
	return &OverlayStore{client: client, keyPrefix: keyPrefix}
}

func (s *OverlayStore) statusKey() string {
	return s.keyPrefix + "alerts:status"
}

func (s *OverlayStore) readKey() string {
	return s.keyPrefix + "alerts:read"
}

// SetStatus records a user-driven status transition for one alert.
func (s *OverlayStore) SetStatus(ctx context.Context, alertID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.HSet(ctx, s.statusKey(), alertID, status).Err(); err != nil {
		return fmt.Errorf("failed to set alert status: %w", err)
	}
	return nil
}

func (s *OverlayStore) Dismiss(ctx context.Context, alertID string) error {
	return s.SetStatus(ctx, alertID, models.AlertStatusDismissed)
}

func (s *OverlayStore) Complete(ctx context.Context, alertID string) error {
	return s.SetStatus(ctx, alertID, models.AlertStatusCompleted)
}

func (s *OverlayStore) MarkRead(ctx context.Context, alertID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.SAdd(ctx, s.readKey(), alertID).Err(); err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	return nil
}

func (s *OverlayStore) MarkAllRead(ctx context.Context, alertIDs []string) error {
	if len(alertIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	members := make([]interface{}, len(alertIDs))
	for i, id := range alertIDs {
		members[i] = id
	}
	if err := s.client.SAdd(ctx, s.readKey(), members...).Err(); err != nil {
		return fmt.Errorf("failed to mark alerts read: %w", err)
	}
	return nil
}

// Statuses returns the persisted status overrides keyed by alert id.
func (s *OverlayStore) Statuses(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	statuses, err := s.client.HGetAll(ctx, s.statusKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alert statuses: %w", err)
	}
	return statuses, nil
}

// ReadIDs returns the set of alert ids the user has marked read.
func (s *OverlayStore) ReadIDs(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ids, err := s.client.SMembers(ctx, s.readKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load read alert ids: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Prune drops overlay entries whose alert is no longer derived (the source
// record was completed, deleted, or left the window). Returns the number of
// entries removed.
func (s *OverlayStore) Prune(ctx context.Context, activeIDs []string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	removed := 0

	statuses, err := s.client.HGetAll(ctx, s.statusKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to load alert statuses: %w", err)
	}
	for id := range statuses {
		if active[id] {
			continue
		}
		if err := s.client.HDel(ctx, s.statusKey(), id).Err(); err != nil {
			return removed, fmt.Errorf("failed to prune alert status %s: %w", id, err)
		}
		removed++
	}

	readIDs, err := s.client.SMembers(ctx, s.readKey()).Result()
	if err != nil {
		return removed, fmt.Errorf("failed to load read alert ids: %w", err)
	}
	for _, id := range readIDs {
		if active[id] {
			continue
		}
		if err := s.client.SRem(ctx, s.readKey(), id).Err(); err != nil {
			return removed, fmt.Errorf("failed to prune read flag %s: %w", id, err)
		}
		removed++
	}

	return removed, nil
}

// Merge applies the persisted overlay onto a freshly derived alert list and
// returns the unread count (pending alerts not yet marked read).
func Merge(alerts []models.Alert, statuses map[string]string, readIDs map[string]bool) int {
	unread := 0
	for i := range alerts {
		if status, ok := statuses[alerts[i].ID]; ok {
			alerts[i].Status = status
		}
		alerts[i].Read = readIDs[alerts[i].ID]
		if alerts[i].Status == models.AlertStatusPending && !alerts[i].Read {
			unread++
		}
	}
	return unread
}
