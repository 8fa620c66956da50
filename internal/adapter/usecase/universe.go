package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

// UniverseService implements port.UniverseManager.
type UniverseService struct {
	repo   port.UniverseRepository
	geo    port.GeoValidator
	logger *slog.Logger
	now    func() time.Time
}

// NewUniverseService creates a service backed by repo. geo is used to
// report broken geography while refreshing.
func NewUniverseService(repo port.UniverseRepository, geo port.GeoValidator, logger *slog.Logger) *UniverseService {
	return &UniverseService{
		repo:   repo,
		geo:    geo,
		logger: componentLogger(logger, "universe_service"),
		now:    time.Now,
	}
}

// PriorityScore returns the universe score in [0,1].
func (s *UniverseService) PriorityScore(ctx context.Context, id int64) (float64, error) {
	u, err := s.universe(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.score(ctx, *u)
}

// RankUniverses scores every active universe, best first. Ties keep the
// repository order.
func (s *UniverseService) RankUniverses(ctx context.Context) ([]domain.UniverseRanking, error) {
	universes, err := s.repo.ListActiveUniverses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active universes: %w", err)
	}
	out := make([]domain.UniverseRanking, 0, len(universes))
	for _, u := range universes {
		score, err := s.score(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.UniverseRanking{Universe: u, Score: score})
	}
	slices.SortStableFunc(out, func(a, b domain.UniverseRanking) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out, nil
}

// RefreshFreshness recounts the universe's targets and stamps the refresh
// time. It is the only operation that writes universe sizes.
func (s *UniverseService) RefreshFreshness(ctx context.Context, id int64) (*domain.TargetUniverse, error) {
	u, err := s.universe(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountTargets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count targets of universe %d: %w", id, err)
	}
	counts = counts.Normalize()
	now := s.now()
	if err = s.repo.UpdateUniverseSize(ctx, id, counts, now); err != nil {
		return nil, fmt.Errorf("update universe %d size: %w", id, err)
	}
	u.ActualSize = counts.Actual
	u.QualifiedCount = counts.Qualified
	u.LastRefresh = &now
	u.UpdatedAt = now

	s.logger.Info("universe refreshed",
		slog.Int64("universe_id", id),
		slog.Int64("actual_size", counts.Actual),
		slog.Int64("qualified_count", counts.Qualified),
	)
	return u, nil
}

// RefreshActive refreshes every active universe. Universes whose geography
// has blocking conflicts are still refreshed; the conflicts are logged.
func (s *UniverseService) RefreshActive(ctx context.Context) (int, error) {
	universes, err := s.repo.ListActiveUniverses(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active universes: %w", err)
	}
	for i, u := range universes {
		if conflicts := s.geo.DetectConflicts(u.Geography); domain.HasErrors(conflicts) {
			for _, c := range conflicts {
				s.logger.Warn("universe geography conflict",
					slog.Int64("universe_id", u.ID),
					slog.String("type", string(c.Type)),
					slog.String("severity", string(c.Severity)),
					slog.String("message", c.Message),
				)
			}
		}
		if _, err = s.RefreshFreshness(ctx, u.ID); err != nil {
			return i, err
		}
	}
	return len(universes), nil
}

// Deactivate retires a universe. It returns domain.ErrUniverseInUse while a
// scheduled, running or paused campaign still references it.
func (s *UniverseService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.universe(ctx, id); err != nil {
		return err
	}
	active, err := s.repo.CountActiveCampaigns(ctx, id)
	if err != nil {
		return fmt.Errorf("count active campaigns of universe %d: %w", id, err)
	}
	if active > 0 {
		return fmt.Errorf("%w: %d active campaigns", domain.ErrUniverseInUse, active)
	}
	ok, err := s.repo.DeactivateUniverse(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate universe %d: %w", id, err)
	}
	if !ok {
		// a campaign was activated between the count and the update
		return domain.ErrUniverseInUse
	}
	s.logger.Info("universe deactivated", slog.Int64("universe_id", id))
	return nil
}

func (s *UniverseService) universe(ctx context.Context, id int64) (*domain.TargetUniverse, error) {
	u, err := s.repo.GetUniverse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load universe %d: %w", id, err)
	}
	if u == nil {
		return nil, fmt.Errorf("universe %d: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (s *UniverseService) score(ctx context.Context, u domain.TargetUniverse) (float64, error) {
	campaigns, err := s.repo.ListUniverseCampaigns(ctx, u.ID)
	if err != nil {
		return 0, fmt.Errorf("list campaigns of universe %d: %w", u.ID, err)
	}
	return domain.UniversePriority(u, campaigns, s.now()), nil
}
