// Package scheduler runs the weekly COGS reminder job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// DefaultSchedule fires every Monday at 06:00.
const DefaultSchedule = "0 6 * * 1"

const runTimeout = 5 * time.Minute

// WeekEnsurer creates the current week's COGS action item when missing.
type WeekEnsurer interface {
	EnsureCurrentWeek(ctx context.Context, accountID uuid.UUID) (*entity.ActionItem, bool, error)
}

// Config holds configuration for the scheduler.
type Config struct {
	Schedule     string
	Location     *time.Location
	DashboardURL string
	// EstimateRatio is quoted in reminders; zero means cogs.DefaultEstimateRatio.
	EstimateRatio float64
}

// RunResult summarizes one reminder run.
type RunResult struct {
	Accounts     int
	ItemsCreated int
	EmailsSent   int
	Failures     int
}

// Scheduler manages the weekly reminder task.
type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	settingsRepo adapter.NotificationSettingsRepository
	ensurer      WeekEnsurer
	sender       adapter.EmailSender
	dashboardURL string
	estimate     float64
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(
	settingsRepo adapter.NotificationSettingsRepository,
	ensurer WeekEnsurer,
	sender adapter.EmailSender,
	cfg Config,
) *Scheduler {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.EstimateRatio <= 0 {
		cfg.EstimateRatio = cogs.DefaultEstimateRatio
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(cfg.Location)),
		schedule:     cfg.Schedule,
		settingsRepo: settingsRepo,
		ensurer:      ensurer,
		sender:       sender,
		dashboardURL: cfg.DashboardURL,
		estimate:     cfg.EstimateRatio,
	}
}

// Start registers the weekly job and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sendWeeklyReminders); err != nil {
		return fmt.Errorf("failed to schedule weekly reminders: %w", err)
	}

	slog.Info("Scheduler started", "schedule", s.schedule)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendWeeklyReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := s.RunWeeklyReminders(ctx)
	if err != nil {
		slog.Error("Weekly reminder run failed", "error", err)
		return
	}

	slog.Info("Weekly reminder run finished",
		"accounts", result.Accounts,
		"items_created", result.ItemsCreated,
		"emails_sent", result.EmailsSent,
		"failures", result.Failures,
	)
}

// RunWeeklyReminders ensures the current-week COGS item for every account
// with notification settings and e-mails the enabled ones.
// Per-account failures are logged and counted, never returned.
func (s *Scheduler) RunWeeklyReminders(ctx context.Context) (*RunResult, error) {
	settings, err := s.settingsRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}

	result := &RunResult{Accounts: len(settings)}
	for _, st := range settings {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		logger := slog.With("account_id", st.AccountID)

		item, created, err := s.ensurer.EnsureCurrentWeek(ctx, st.AccountID)
		if err != nil {
			logger.Error("Failed to ensure current week action item", "error", err)
			result.Failures++
			continue
		}
		if created {
			result.ItemsCreated++
		}

		if !st.WeeklyCOGSReminder || st.Email == "" || !item.IsOpen() {
			continue
		}

		sent, err := s.sender.SendCOGSReminder(ctx, adapter.COGSReminder{
			To:            st.Email,
			WeekStartDate: item.WeekStartDate,
			WeekEndDate:   item.WeekEndDate,
			DashboardURL:  s.dashboardURL,
			EstimateRatio: s.estimate,
		})
		if err != nil {
			logger.Error("Failed to send COGS reminder", "error", err)
			result.Failures++
			continue
		}

		logger.Debug("COGS reminder sent", "resend_id", sent.ResendID)
		result.EmailsSent++
	}

	return result, nil
}
