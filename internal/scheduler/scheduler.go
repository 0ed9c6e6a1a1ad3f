package scheduler

import (
	"context"

	"weatherbot/internal/domain"
	"weatherbot/internal/metrics"

	"go.uber.org/zap"
)

// DailyPrefix starts every scheduled message
const DailyPrefix = "☀️ Your daily weather update:\n\n"

// Sender delivers a text message to a user
type Sender interface {
	Send(userID int64, text string) error
}

// Reporter renders weather text for a city with user's settings
type Reporter interface {
	Report(ctx context.Context, city string, prefs domain.Preferences) (string, bool)
}

// PreferenceLister returns a snapshot of all registered users
type PreferenceLister interface {
	All() []domain.UserPreferences
}

// DailyScheduler sends every registered user their weather once a day at a fixed local time
type DailyScheduler struct {
	hour     int
	minute   int
	prefs    PreferenceLister
	reporter Reporter
	sender   Sender
	clock    Clock
	metrics  *metrics.Metrics
	logger   *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDailyScheduler creates a scheduler firing at hour:minute of clock's local time
func NewDailyScheduler(
	hour, minute int,
	prefs PreferenceLister,
	reporter Reporter,
	sender Sender,
	clock Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DailyScheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &DailyScheduler{
		hour:     hour,
		minute:   minute,
		prefs:    prefs,
		reporter: reporter,
		sender:   sender,
		clock:    clock,
		metrics:  m,
		logger:   logger,
	}
}

// Start runs the daily loop in background. Calling Start twice has no effect.
func (s *DailyScheduler) Start(parent context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx)
}

// Stop cancels the loop and waits for it to finish
func (s *DailyScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

func (s *DailyScheduler) loop(ctx context.Context) {
	defer close(s.done)

	for {
		now := s.clock.Now()
		next := NextRun(now, s.hour, s.minute)

		s.logger.Info("Daily notifications scheduled",
			zap.Time("next_run", next),
			zap.Duration("wait", next.Sub(now)),
		)

		select {
		case <-ctx.Done():
			s.logger.Info("Daily scheduler stopped")
			return
		case <-s.clock.After(next.Sub(now)):
			s.RunOnce(ctx)
		}
	}
}

// RunOnce sends the weather report to every registered user.
// A failed delivery is logged and doesn't affect other users.
func (s *DailyScheduler) RunOnce(ctx context.Context) (sent, failed int) {
	users := s.prefs.All()
	s.logger.Info("Sending daily weather", zap.Int("users", len(users)))

	for _, u := range users {
		if ctx.Err() != nil {
			s.logger.Warn("Daily run interrupted", zap.Int("remaining", len(users)-sent-failed))
			break
		}

		text, _ := s.reporter.Report(ctx, u.Preferences.City, u.Preferences)
		err := s.sender.Send(u.UserID, DailyPrefix+text)
		s.metrics.ObserveDelivery(err)
		if err != nil {
			failed++
			s.logger.Warn("Failed to deliver daily weather",
				zap.Int64("user_id", u.UserID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.metrics.ObserveSchedulerRun()
	s.logger.Info("Daily weather sent", zap.Int("sent", sent), zap.Int("failed", failed))
	return sent, failed
}
