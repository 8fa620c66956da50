package domain

import (
	"fmt"
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignRunning   CampaignStatus = "running"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
	CampaignError     CampaignStatus = "error"
)

// campaignTransitions only moves forward, except for running <-> paused.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignScheduled, CampaignRunning, CampaignCancelled},
	CampaignScheduled: {CampaignRunning, CampaignCancelled, CampaignError},
	CampaignRunning:   {CampaignPaused, CampaignCompleted, CampaignCancelled, CampaignError},
	CampaignPaused:    {CampaignRunning, CampaignCompleted, CampaignCancelled, CampaignError},
}

// CanTransitionTo reports whether a campaign in status s may move to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	return slices.Contains(campaignTransitions[s], next)
}

// IsActive reports whether the status still holds a claim on its universe.
func (s CampaignStatus) IsActive() bool {
	switch s {
	case CampaignScheduled, CampaignRunning, CampaignPaused:
		return true
	}
	return false
}

// Campaign is one execution of outreach against a TargetUniverse.
// Costs are stored in integer units (e.g. cents).
type Campaign struct {
	ID               int64
	UniverseID       int64
	Name             string
	Status           CampaignStatus
	TotalTargets     int64
	ContactedTargets int64
	RespondedTargets int64
	ConvertedTargets int64
	ExcludedTargets  int64
	EstimatedCost    int64
	ActualCost       int64
	Settings         BatchSettings
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ConversionRate is converted/total, or 0 for an empty campaign.
func (c Campaign) ConversionRate() float64 {
	if c.TotalTargets <= 0 {
		return 0
	}
	return float64(c.ConvertedTargets) / float64(c.TotalTargets)
}

// ResponseRate is responded/contacted, or 0 before any contact.
func (c Campaign) ResponseRate() float64 {
	if c.ContactedTargets <= 0 {
		return 0
	}
	return float64(c.RespondedTargets) / float64(c.ContactedTargets)
}

// TransitionTo moves the campaign to next or returns
// ErrInvalidCampaignTransition.
func (c *Campaign) TransitionTo(next CampaignStatus, now time.Time) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidCampaignTransition, c.Status, next)
	}
	c.Status = next
	c.UpdatedAt = now
	return nil
}
