package availability

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockKey   = constvars.LeaderLockKeyBase + "availability-sweep"
	defaultCronSpec = "@hourly"
)

// SweepWorker periodically resyncs every provider's availability cache so
// that records written outside the API do not leave profiles stale. Only
// the instance holding the redis leader lock runs a sweep.
type SweepWorker struct {
	log      *zap.Logger
	locker   contracts.LockerService
	usecase  contracts.AvailabilityUsecase
	stop     chan struct{}
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
	lockTTL  time.Duration
	cronSpec string
}

func NewSweepWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, usecase contracts.AvailabilityUsecase) *SweepWorker {
	lockTTL := time.Duration(cfg.Availability.SweepLockTTLInSeconds) * time.Second
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &SweepWorker{
		log:      log,
		locker:   lockerSvc,
		usecase:  usecase,
		stop:     make(chan struct{}),
		lockTTL:  lockTTL,
		cronSpec: cfg.Availability.SweepCronSpec,
	}
}

func (w *SweepWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cronSpec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("availability.worker: invalid cron spec, falling back to @hourly",
			zap.String("cron_spec", w.cronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for an in-flight sweep to return.
func (w *SweepWorker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *SweepWorker) RunOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, w.lockTTL)
	if err != nil {
		w.log.Warn("availability.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("availability.worker: leader lock held by another instance")
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), leaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(w.lockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-w.stop:
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, leaderLockKey, token, w.lockTTL); err != nil {
					w.log.Warn("availability.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	start := time.Now()
	synced, err := w.usecase.SyncAllProviders(ctx)
	if err != nil {
		w.log.Warn("availability.worker: sweep interrupted",
			zap.Int(constvars.LoggingCountKey, synced),
			zap.Error(err),
		)
		return
	}
	w.log.Info("availability.worker: sweep completed",
		zap.Int(constvars.LoggingCountKey, synced),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
}
