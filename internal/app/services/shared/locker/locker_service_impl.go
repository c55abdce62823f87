package locker

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			redisRepo: repo,
			Log:       logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	lockValue := uuid.NewString()

	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Debug("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID := utils.GetRequestID(ctx)

	owned, stored, err := s.owns(ctx, key, lockValue)
	if err != nil {
		return err
	}
	if stored == "" {
		s.Log.Debug("lockService.Unlock no lock found to release",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return nil
	}
	if !owned {
		err := fmt.Errorf("%w: %s owned by another holder", exceptions.ErrLockNotAcquired, key)
		s.Log.Warn("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return err
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	owned, _, err := s.owns(ctx, key, lockValue)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: %s", exceptions.ErrLockNotAcquired, key)
	}

	extended, err := s.redisRepo.Expire(ctx, key, expiration)
	if err != nil {
		return err
	}
	if !extended {
		return fmt.Errorf("%w: %s expired before refresh", exceptions.ErrLockNotAcquired, key)
	}
	return nil
}

// owns reports whether lockValue holds key. Values are stored JSON encoded.
func (s *lockService) owns(ctx context.Context, key, lockValue string) (bool, string, error) {
	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.owns error retrieving value from redis",
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return false, "", err
	}
	return stored == fmt.Sprintf("%q", lockValue), stored, nil
}
