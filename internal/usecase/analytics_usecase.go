package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"
)

//go:generate mockgen -source=analytics_usecase.go -destination=../adapter/http/handlers/mocks/mock_analytics_usecase.go -package=mocks

var (
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidPageName  = errors.New("invalid page name")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// PatternAnalyticsEvent is published for every tracked event.
const PatternAnalyticsEvent = "analytics.event"

const topEventsLimit = 10

// EventInput is a behavioural event as reported by the storefront page.
// SessionID is optional; when it names an open session the event is linked to it.
type EventInput struct {
	Type      string
	Data      map[string]any
	URL       string
	UserAgent string
	SessionID string
}

type PageViewInput struct {
	PageName  string
	PageURL   string
	Referrer  string
	UserAgent string
	SessionID string
}

// IAnalyticsAggregator ingests events, page views and sessions and recomputes
// summary statistics from the stored collections on every call.

type IAnalyticsAggregator interface {
	TrackEvent(ctx context.Context, in EventInput) (entities.TrackedEvent, error)
	TrackPageView(ctx context.Context, in PageViewInput) (entities.PageView, error)
	StartSession(ctx context.Context, userID string, device entities.DeviceInfo) (string, error)
	EndSession(ctx context.Context, sessionID string) error
	GetVisitStatistics(ctx context.Context) (entities.VisitStatistics, error)
	GetEventStatistics(ctx context.Context) (entities.EventStatistics, error)
	GetConversionRate(ctx context.Context) (float64, error)
	GetUserBehavior(ctx context.Context) (entities.UserBehavior, error)
	CleanupOldData(ctx context.Context, retentionDays int) (entities.CleanupResult, error)
	GenerateComprehensiveReport(ctx context.Context) (entities.AnalyticsReport, error)
}

type AnalyticsAggregator struct {
	mu        sync.Mutex
	store     interfaces.IKeyValueStore
	publisher interfaces.IEventPublisher
	now       Clock

	events    []entities.TrackedEvent
	pageViews []entities.PageView
	sessions  []entities.UserSession
}

var _ IAnalyticsAggregator = (*AnalyticsAggregator)(nil)

// NewAnalyticsAggregator loads the three analytics collections. publisher and clock may be nil.
func NewAnalyticsAggregator(ctx context.Context, store interfaces.IKeyValueStore, publisher interfaces.IEventPublisher, clock Clock) (*AnalyticsAggregator, error) {
	if clock == nil {
		clock = SystemClock
	}
	events, err := loadCollection[entities.TrackedEvent](ctx, store, EventsCollectionKey)
	if err != nil {
		return nil, err
	}
	pageViews, err := loadCollection[entities.PageView](ctx, store, PageViewsCollectionKey)
	if err != nil {
		return nil, err
	}
	sessions, err := loadCollection[entities.UserSession](ctx, store, SessionsCollectionKey)
	if err != nil {
		return nil, err
	}
	log.Printf("[analytics][usecase] aggregator loaded events=%d page_views=%d sessions=%d", len(events), len(pageViews), len(sessions))
	return &AnalyticsAggregator{
		store:     store,
		publisher: publisher,
		now:       clock,
		events:    events,
		pageViews: pageViews,
		sessions:  sessions,
	}, nil
}

func (a *AnalyticsAggregator) TrackEvent(ctx context.Context, in EventInput) (entities.TrackedEvent, error) {
	eventType := strings.TrimSpace(in.Type)
	if eventType == "" {
		return entities.TrackedEvent{}, ErrInvalidEventType
	}
	data := maps.Clone(in.Data)
	if data == nil {
		data = map[string]any{}
	}

	event, err := func() (entities.TrackedEvent, error) {
		a.mu.Lock()
		defer a.mu.Unlock()

		now := a.now()
		event := entities.TrackedEvent{
			ID:        newEventID(now),
			Type:      eventType,
			Data:      data,
			Timestamp: now,
			URL:       in.URL,
			UserAgent: in.UserAgent,
		}
		next := append(slices.Clip(a.events), event)
		if err := saveCollection(ctx, a.store, EventsCollectionKey, next); err != nil {
			return entities.TrackedEvent{}, err
		}
		a.events = next
		a.linkToSession(ctx, in.SessionID, func(s *entities.UserSession) {
			s.Events = append(slices.Clip(s.Events), event.ID)
		})
		return event, nil
	}()
	if err != nil {
		log.Printf("[analytics][usecase] track-event failed type=%s err=%v", eventType, err)
		return entities.TrackedEvent{}, err
	}

	publish(ctx, a.publisher, PatternAnalyticsEvent, event)
	return event, nil
}

func (a *AnalyticsAggregator) TrackPageView(ctx context.Context, in PageViewInput) (entities.PageView, error) {
	pageName := strings.TrimSpace(in.PageName)
	if pageName == "" {
		return entities.PageView{}, ErrInvalidPageName
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	pv := entities.PageView{
		ID:        newEventID(now),
		PageName:  pageName,
		PageURL:   in.PageURL,
		Timestamp: now,
		Referrer:  strings.TrimSpace(in.Referrer),
		UserAgent: in.UserAgent,
	}
	next := append(slices.Clip(a.pageViews), pv)
	if err := saveCollection(ctx, a.store, PageViewsCollectionKey, next); err != nil {
		log.Printf("[analytics][usecase] track-page-view failed page=%s err=%v", pageName, err)
		return entities.PageView{}, err
	}
	a.pageViews = next
	a.linkToSession(ctx, in.SessionID, func(s *entities.UserSession) {
		s.PageViews = append(slices.Clip(s.PageViews), pv.ID)
	})
	return pv, nil
}

// linkToSession records a reference on an open session. Failures are logged only:
// the tracked record itself is already stored.
func (a *AnalyticsAggregator) linkToSession(ctx context.Context, sessionID string, link func(s *entities.UserSession)) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return
	}
	idx := a.sessionIndex(sessionID)
	if idx < 0 || a.sessions[idx].IsClosed() {
		return
	}
	next := slices.Clone(a.sessions)
	link(&next[idx])
	if err := saveCollection(ctx, a.store, SessionsCollectionKey, next); err != nil {
		log.Printf("[analytics][usecase] session link failed session_id=%s err=%v", sessionID, err)
		return
	}
	a.sessions = next
}

func (a *AnalyticsAggregator) StartSession(ctx context.Context, userID string, device entities.DeviceInfo) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	session := entities.UserSession{
		ID:         newSessionID(now),
		UserID:     strings.TrimSpace(userID),
		StartTime:  now,
		PageViews:  []string{},
		Events:     []string{},
		DeviceInfo: device,
	}
	next := append(slices.Clip(a.sessions), session)
	if err := saveCollection(ctx, a.store, SessionsCollectionKey, next); err != nil {
		log.Printf("[analytics][usecase] start-session failed user_id=%s err=%v", session.UserID, err)
		return "", err
	}
	a.sessions = next
	log.Printf("[analytics][usecase] session started session_id=%s user_id=%s", session.ID, session.UserID)
	return session.ID, nil
}

// EndSession closes an open session. Unknown or already closed sessions are a no-op.
func (a *AnalyticsAggregator) EndSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.sessionIndex(sessionID)
	if idx < 0 {
		log.Printf("[analytics][usecase] end-session not-found session_id=%s", sessionID)
		return nil
	}
	if a.sessions[idx].IsClosed() {
		return nil
	}

	end := a.now()
	next := slices.Clone(a.sessions)
	next[idx].EndTime = &end
	next[idx].DurationMS = end.Sub(next[idx].StartTime).Milliseconds()
	if err := saveCollection(ctx, a.store, SessionsCollectionKey, next); err != nil {
		return err
	}
	a.sessions = next
	log.Printf("[analytics][usecase] session ended session_id=%s duration_ms=%d", sessionID, next[idx].DurationMS)
	return nil
}

func (a *AnalyticsAggregator) GetVisitStatistics(_ context.Context) (entities.VisitStatistics, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return visitStatistics(a.pageViews, a.sessions), nil
}

func (a *AnalyticsAggregator) GetEventStatistics(_ context.Context) (entities.EventStatistics, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return eventStatistics(a.events), nil
}

func (a *AnalyticsAggregator) GetConversionRate(_ context.Context) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return conversionRate(a.events), nil
}

func (a *AnalyticsAggregator) GetUserBehavior(_ context.Context) (entities.UserBehavior, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return userBehavior(a.events), nil
}

// CleanupOldData removes records whose timestamp (session start for sessions) is
// strictly before now - retentionDays.
func (a *AnalyticsAggregator) CleanupOldData(ctx context.Context, retentionDays int) (entities.CleanupResult, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultAnalyticsRetentionDays
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := retentionCutoff(a.now(), retentionDays)
	var res entities.CleanupResult

	events := slices.DeleteFunc(slices.Clone(a.events), func(e entities.TrackedEvent) bool { return e.Timestamp.Before(cutoff) })
	if err := saveCollection(ctx, a.store, EventsCollectionKey, events); err != nil {
		return entities.CleanupResult{}, err
	}
	res.EventsDeleted = len(a.events) - len(events)
	a.events = events

	pageViews := slices.DeleteFunc(slices.Clone(a.pageViews), func(pv entities.PageView) bool { return pv.Timestamp.Before(cutoff) })
	if err := saveCollection(ctx, a.store, PageViewsCollectionKey, pageViews); err != nil {
		return res, err
	}
	res.PageViewsDeleted = len(a.pageViews) - len(pageViews)
	a.pageViews = pageViews

	sessions := slices.DeleteFunc(slices.Clone(a.sessions), func(s entities.UserSession) bool { return s.StartTime.Before(cutoff) })
	if err := saveCollection(ctx, a.store, SessionsCollectionKey, sessions); err != nil {
		return res, err
	}
	res.SessionsDeleted = len(a.sessions) - len(sessions)
	a.sessions = sessions

	log.Printf("[analytics][usecase] cleanup success retention_days=%d events=%d page_views=%d sessions=%d",
		retentionDays, res.EventsDeleted, res.PageViewsDeleted, res.SessionsDeleted)
	return res, nil
}

func (a *AnalyticsAggregator) GenerateComprehensiveReport(_ context.Context) (entities.AnalyticsReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return entities.AnalyticsReport{
		GeneratedAt:     a.now(),
		VisitStatistics: visitStatistics(a.pageViews, a.sessions),
		EventStatistics: eventStatistics(a.events),
		UserBehavior:    userBehavior(a.events),
		ConversionRate:  conversionRate(a.events),
		Summary: entities.ReportSummary{
			TotalEvents:       len(a.events),
			TotalPageViews:    len(a.pageViews),
			TotalSessions:     len(a.sessions),
			DataRetentionDays: DefaultAnalyticsRetentionDays,
		},
	}, nil
}

func (a *AnalyticsAggregator) sessionIndex(id string) int {
	return slices.IndexFunc(a.sessions, func(s entities.UserSession) bool { return s.ID == id })
}

func visitStatistics(pageViews []entities.PageView, sessions []entities.UserSession) entities.VisitStatistics {
	stats := entities.VisitStatistics{
		TotalPageViews: len(pageViews),
		TotalSessions:  len(sessions),
		TopPages:       map[string]int{},
		Referrers:      map[string]int{},
	}
	for _, pv := range pageViews {
		stats.TopPages[pv.PageName]++
		if pv.Referrer != "" {
			stats.Referrers[pv.Referrer]++
		}
	}
	stats.UniquePages = len(stats.TopPages)

	var total int64
	var closed int
	for _, s := range sessions {
		if s.IsClosed() {
			total += s.DurationMS
			closed++
		}
	}
	if closed > 0 {
		stats.AverageSessionDuration = int64(roundHalfUp(float64(total) / float64(closed)))
	}
	return stats
}

func eventStatistics(events []entities.TrackedEvent) entities.EventStatistics {
	stats := entities.EventStatistics{
		TotalEvents:  len(events),
		EventsByType: map[string]int{},
		EventsByDate: map[string]int{},
		TopEvents:    []entities.EventCount{},
	}
	var seen []string
	for _, e := range events {
		if _, ok := stats.EventsByType[e.Type]; !ok {
			seen = append(seen, e.Type)
		}
		stats.EventsByType[e.Type]++
		stats.EventsByDate[e.Timestamp.UTC().Format("2006-01-02")]++
	}

	for _, t := range seen {
		stats.TopEvents = append(stats.TopEvents, entities.EventCount{Type: t, Count: stats.EventsByType[t]})
	}
	sort.SliceStable(stats.TopEvents, func(i, j int) bool {
		return stats.TopEvents[i].Count > stats.TopEvents[j].Count
	})
	if len(stats.TopEvents) > topEventsLimit {
		stats.TopEvents = stats.TopEvents[:topEventsLimit]
	}
	return stats
}

func countType(events []entities.TrackedEvent, eventType string) int {
	n := 0
	for _, e := range events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// conversionRate is checkout / addToCart as a percentage with two decimals.
func conversionRate(events []entities.TrackedEvent) float64 {
	added := countType(events, entities.EventTypeAddToCart)
	if added == 0 {
		return 0
	}
	checkouts := countType(events, entities.EventTypeCheckout)
	return math.Round(float64(checkouts)/float64(added)*100*100) / 100
}

func userBehavior(events []entities.TrackedEvent) entities.UserBehavior {
	behavior := entities.UserBehavior{
		MostViewedProducts: map[string]int{},
		MostSearchedTerms:  map[string]int{},
	}
	for _, e := range events {
		switch e.Type {
		case entities.EventTypeViewProduct:
			if v, ok := payloadString(e.Data, entities.EventDataProductID); ok {
				behavior.MostViewedProducts[v]++
			}
		case entities.EventTypeSearch:
			if v, ok := payloadString(e.Data, entities.EventDataSearchTerm); ok {
				behavior.MostSearchedTerms[v]++
			}
		}
	}
	behavior.AbandonedCarts = countType(events, entities.EventTypeAddToCart) - countType(events, entities.EventTypeCheckout)
	behavior.CompletedPurchases = countType(events, entities.EventTypePurchase)
	return behavior
}

func payloadString(data map[string]any, key string) (string, bool) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s, s != ""
}
