package training

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	trainingerrors "hr-admin/internal/training/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "trainings:catalog"
	catalogCacheTTL = time.Hour
)

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]TrainingResponse, error)
	Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

// NewService accepts a nil redis client; caching is then skipped and every
// List hits the database.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) List(ctx context.Context) ([]TrainingResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var res []TrainingResponse
			if jsonErr := json.Unmarshal(cached, &res); jsonErr == nil {
				return res, nil
			}
			// unreadable cache entry falls through to the database
			s.rdb.Del(ctx, catalogCacheKey)
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("training cache read failed", zap.Error(err))
		}
	}

	// collapse concurrent cache misses into one database read
	v, err, _ := s.group.Do(catalogCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		res := make([]TrainingResponse, len(rows))
		for i, row := range rows {
			res[i] = mapToResponse(row)
		}

		if s.rdb != nil {
			if payload, jsonErr := json.Marshal(res); jsonErr == nil {
				if cacheErr := s.rdb.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); cacheErr != nil {
					s.logger.Warn("training cache write failed", zap.Error(cacheErr))
				}
			}
		}
		return res, nil
	})
	if err != nil {
		s.logger.Error("list trainings failed", zap.Error(err))
		return nil, err
	}

	return v.([]TrainingResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error) {
	t := &Training{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Department:  defaultAll(req.Department),
		Position:    defaultAll(req.Position),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create training failed", zap.Error(err))
		return TrainingResponse{}, err
	}
	s.logger.Info("create training success", zap.String("training_id", t.ID.String()))
	s.invalidateCatalog(ctx)

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return trainingerrors.ErrInvalidTrainingID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trainingerrors.ErrTrainingNotFound
		}
		s.logger.Error("delete training failed", zap.String("training_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete training success", zap.String("training_id", id))
	s.invalidateCatalog(ctx)
	return nil
}

func (s *service) invalidateCatalog(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("training cache invalidation failed", zap.Error(err))
	}
}

func defaultAll(v string) string {
	if v == "" {
		return "All"
	}
	return v
}

func mapToResponse(t Training) TrainingResponse {
	return TrainingResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Department:  t.Department,
		Position:    t.Position,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
