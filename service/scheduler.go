package service

import (
	"context"
	"errors"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const scheduledRunTimeout = 2 * time.Minute

// StartPayoutScheduler runs payout generation for the current month on the cron schedule.
// An empty schedule disables it and returns a nil scheduler.
func StartPayoutScheduler(schedule string, generator domain.PayoutGenerator, loc *time.Location) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		RunScheduledPayouts(ctx, generator, time.Now(), loc)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("schedule", schedule).Str("location", loc.String()).Msg("payout scheduler started")
	return c, nil
}

// RunScheduledPayouts generates payouts for the period containing now.
func RunScheduledPayouts(ctx context.Context, generator domain.PayoutGenerator, now time.Time, loc *time.Location) *domain.PayoutBatch {
	period := utils.CurrentPeriod(now, loc)
	batch, err := generator.GenerateForActiveTeachers(ctx, period)
	switch {
	case errors.Is(err, domain.ErrNoEligibleTeacher):
		log.Info().Str("period", period.String()).Msg("scheduled payouts: no active teacher")
		return nil
	case err != nil:
		log.Error().Err(err).Str("period", period.String()).Msg("scheduled payouts failed")
		return nil
	}
	return batch
}
