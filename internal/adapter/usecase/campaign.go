package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

// CampaignService guards campaign status changes and exposes campaign
// priority.
type CampaignService struct {
	campaigns port.CampaignRepository
	universes port.UniverseRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewCampaignService creates a campaign service.
func NewCampaignService(campaigns port.CampaignRepository, universes port.UniverseRepository, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		universes: universes,
		logger:    componentLogger(logger, "campaign_service"),
		now:       time.Now,
	}
}

// Transition moves a campaign to status `to`. Transitions are monotonic
// except running <-> paused.
func (s *CampaignService) Transition(ctx context.Context, id int64, to domain.CampaignStatus) error {
	c, err := s.campaign(ctx, id)
	if err != nil {
		return err
	}
	from := c.Status
	if err = c.TransitionTo(to, s.now()); err != nil {
		return err
	}
	ok, err := s.campaigns.UpdateCampaignStatus(ctx, id, from, to)
	if err != nil {
		return fmt.Errorf("update campaign %d status: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("%w: campaign %d is no longer %s", domain.ErrInvalidCampaignTransition, id, from)
	}
	s.logger.Info("campaign status changed",
		slog.Int64("campaign_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	return nil
}

// PriorityScore returns the campaign's scheduling priority in [0,100].
func (s *CampaignService) PriorityScore(ctx context.Context, id int64) (float64, error) {
	c, err := s.campaign(ctx, id)
	if err != nil {
		return 0, err
	}
	u, err := s.universes.GetUniverse(ctx, c.UniverseID)
	if err != nil {
		return 0, fmt.Errorf("load universe %d: %w", c.UniverseID, err)
	}
	var size int64
	if u != nil {
		size = u.ActualSize
	}
	return domain.CampaignPriority(*c, size, s.now()), nil
}

func (s *CampaignService) campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign %d: %w", id, err)
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}
