package service

import (
	"context"
	"sync"
	"time"

	"guestdesk/core/cache"
	"guestdesk/core/constants"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/modules/analytics/entity"
	"guestdesk/modules/analytics/repository"
	eventService "guestdesk/modules/event/service"

	"github.com/google/uuid"
)

type AnalyticsService struct {
	repo   *repository.AnalyticsRepository
	events *eventService.EventService
	cache  *cache.Cache

	mu      sync.Mutex
	watched map[uuid.UUID]map[uuid.UUID]entity.GuestStats
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, events *eventService.EventService, c *cache.Cache) *AnalyticsService {
	return &AnalyticsService{
		repo:    repo,
		events:  events,
		cache:   c,
		watched: make(map[uuid.UUID]map[uuid.UUID]entity.GuestStats),
	}
}

// TrackInviteView bumps the invite-page counter for a public code. Unknown
// codes are answered the same as known ones so the endpoint cannot be used
// to probe for valid codes.
func (s *AnalyticsService) TrackInviteView(ctx context.Context, publicCode string) error {
	matched, err := s.repo.IncrementInviteViews(ctx, publicCode)
	if err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to record view", err)
	}
	if !matched {
		logger.Debug("AnalyticsService:TrackInviteView:UnknownCode", "code", publicCode)
	}
	return nil
}

// TrackRSVPView bumps the RSVP-page counter for a public code.
func (s *AnalyticsService) TrackRSVPView(ctx context.Context, publicCode string) error {
	matched, err := s.repo.IncrementRSVPViews(ctx, publicCode)
	if err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to record view", err)
	}
	if !matched {
		logger.Debug("AnalyticsService:TrackRSVPView:UnknownCode", "code", publicCode)
	}
	return nil
}

// Summary returns the host dashboard aggregates and puts the event under
// poller observation.
func (s *AnalyticsService) Summary(ctx context.Context, hostID, eventID uuid.UUID) (*entity.Summary, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	summary, err := s.repo.SummaryByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load summary", err)
	}
	s.watch(eventID)
	return summary, nil
}

// Version returns the monotonic change counter for an event. Clients poll
// this cheap endpoint and refetch the summary only when it moves.
func (s *AnalyticsService) Version(ctx context.Context, hostID, eventID uuid.UUID) (int64, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return 0, err
	}
	s.watch(eventID)
	version, err := s.cache.GetAnalyticsVersion(ctx, eventID.String())
	if err != nil {
		// Redis being down must not break the dashboard.
		logger.Warn("AnalyticsService:Version:CacheError", "event_id", eventID, "error", err)
		return 0, nil
	}
	return version, nil
}

func (s *AnalyticsService) watch(eventID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watched[eventID]; !ok {
		s.watched[eventID] = nil
	}
}

// StartPoller samples watched events on a fixed interval and bumps the
// Redis version counter whenever engagement moved. It blocks until the
// context is cancelled, so call it from its own goroutine.
func (s *AnalyticsService) StartPoller(ctx context.Context) {
	ticker := time.NewTicker(constants.AnalyticsPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *AnalyticsService) pollOnce(ctx context.Context) {
	s.mu.Lock()
	eventIDs := make([]uuid.UUID, 0, len(s.watched))
	for id := range s.watched {
		eventIDs = append(eventIDs, id)
	}
	s.mu.Unlock()

	for _, eventID := range eventIDs {
		next, err := s.repo.SnapshotByEvent(ctx, eventID)
		if err != nil {
			logger.Warn("AnalyticsService:Poll:SnapshotFailed", "event_id", eventID, "error", err)
			continue
		}

		s.mu.Lock()
		prev := s.watched[eventID]
		s.watched[eventID] = next
		s.mu.Unlock()

		if prev == nil {
			// First sample only establishes the baseline.
			continue
		}
		changes := Diff(prev, next)
		if len(changes) == 0 {
			continue
		}

		snapshot := entity.Snapshot{EventID: eventID, TakenAt: time.Now(), Guests: next}
		if err := s.cache.SetAnalyticsSnapshot(ctx, eventID.String(), snapshot); err != nil {
			logger.Warn("AnalyticsService:Poll:CacheSnapshotFailed", "event_id", eventID, "error", err)
		}
		version, err := s.cache.BumpAnalyticsVersion(ctx, eventID.String())
		if err != nil {
			logger.Warn("AnalyticsService:Poll:BumpVersionFailed", "event_id", eventID, "error", err)
			continue
		}
		logger.Info("AnalyticsService:Poll:Changed",
			"event_id", eventID, "changes", len(changes), "version", version)
	}
}
