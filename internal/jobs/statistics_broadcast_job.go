package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultStatisticsSchedule fires every 30 seconds.
const DefaultStatisticsSchedule = "*/30 * * * * *"

// StatisticsPublisher recomputes queue statistics and sends them to staff.
type StatisticsPublisher interface {
	PublishStatistics(ctx context.Context) error
}

// StatisticsBroadcastJob periodically refreshes the admin dashboard even when
// no order changes. Order changes publish statistics on their own.
type StatisticsBroadcastJob struct {
	publisher StatisticsPublisher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStatisticsBroadcastJob creates the job. An empty schedule falls back to
// DefaultStatisticsSchedule; the expression has a leading seconds field.
func NewStatisticsBroadcastJob(publisher StatisticsPublisher, schedule string, logger *slog.Logger) *StatisticsBroadcastJob {
	if schedule == "" {
		schedule = DefaultStatisticsSchedule
	}
	return &StatisticsBroadcastJob{
		publisher: publisher,
		schedule:  schedule,
		timeout:   10 * time.Second,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "statistics_broadcast_job"),
	}
}

func (j *StatisticsBroadcastJob) Name() string {
	return "statistics broadcast"
}

// Start registers the broadcast and starts the scheduler. An invalid
// schedule is reported here rather than at construction.
func (j *StatisticsBroadcastJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics broadcast job started", "schedule", j.schedule)
	return nil
}

// Run performs a single broadcast.
func (j *StatisticsBroadcastJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.publisher.PublishStatistics(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Statistics broadcast failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running broadcast to finish.
func (j *StatisticsBroadcastJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Statistics broadcast job stopped")
}
