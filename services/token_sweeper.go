package services

import (
	"context"
	"sync"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/metrics"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const sweepTimeout = time.Minute

// TokenSweeper periodically deletes expired and revoked refresh tokens.
// Validation checks expiry inline, so a missed run only costs disk space.
type TokenSweeper struct {
	tokens db.TokenDatabase
	cron   *cron.Cron
	logger zerolog.Logger
	now    func() time.Time
	wg     sync.WaitGroup
}

func NewTokenSweeper(tokens db.TokenDatabase, schedule string, logger zerolog.Logger) (*TokenSweeper, error) {
	sweeper := &TokenSweeper{
		tokens: tokens,
		logger: logger.With().Str("component", "token_sweeper").Logger(),
		now:    time.Now,
	}
	cronLog := cronLogger{sweeper.logger}
	sweeper.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := sweeper.cron.AddFunc(schedule, sweeper.run); err != nil {
		return nil, err
	}
	return sweeper, nil
}

// Start sweeps once immediately and then follows the schedule
func (ts *TokenSweeper) Start() {
	ts.wg.Add(1)
	go func() {
		defer ts.wg.Done()
		ts.run()
	}()
	ts.cron.Start()
}

// Stop waits for running sweeps to finish, including the one fired by Start
func (ts *TokenSweeper) Stop() {
	<-ts.cron.Stop().Done()
	ts.wg.Wait()
}

func (ts *TokenSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	_, _ = ts.Sweep(ctx)
}

func (ts *TokenSweeper) Sweep(ctx context.Context) (int64, error) {
	removed, err := ts.tokens.DeleteStaleRefreshTokens(ctx, ts.now().UTC())
	metrics.RecordTokenSweep(removed, err)
	if err != nil {
		ts.logger.Error().Err(err).Msg("refresh token sweep failed")
		return 0, err
	}
	ts.logger.Info().Int64("removed", removed).Msg("refresh token sweep finished")
	return removed, nil
}

// cronLogger routes cron's own logging into zerolog
type cronLogger struct {
	logger zerolog.Logger
}

func (cl cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cl cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	cl.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
