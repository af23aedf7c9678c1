package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/pkg/models/model"
)

// DefaultExpireSeconds keeps an idle game for a day.
const DefaultExpireSeconds = 24 * 60 * 60

var ErrNotFound = errors.New("game not found")

type Store interface {
	Create(ctx context.Context, snapshot message.Snapshot) error
	Load(ctx context.Context, uid message.GameUid) (message.Snapshot, error)
	// Update loads the snapshot, lets fn change it and stores the result,
	// all under the game's lock. Nothing is stored when fn fails.
	Update(ctx context.Context, uid message.GameUid, fn func(*message.Snapshot) error) (message.Snapshot, error)
	Delete(ctx context.Context, uid message.GameUid) error
}

type RedisStore struct {
	rds           *redis.Redis
	expireSeconds int
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rds *redis.Redis, expireSeconds int) *RedisStore {
	if expireSeconds <= 0 {
		expireSeconds = DefaultExpireSeconds
	}
	return &RedisStore{rds: rds, expireSeconds: expireSeconds}
}

func (s *RedisStore) Create(ctx context.Context, snapshot message.Snapshot) error {
	ok, err := s.rds.SetnxExCtx(ctx, snapshot.GameUid.Key(), snapshot.String(), s.expireSeconds)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("game %s already exists", snapshot.GameUid)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, uid message.GameUid) (message.Snapshot, error) {
	value, err := s.rds.GetCtx(ctx, uid.Key())
	if err != nil {
		return message.Snapshot{}, err
	}
	if value == "" {
		return message.Snapshot{}, ErrNotFound
	}

	snapshot, err := message.ParseSnapshot(value)
	if err != nil {
		return message.Snapshot{}, fmt.Errorf("decode game %s: %w", uid, err)
	}
	return snapshot, nil
}

func (s *RedisStore) Update(ctx context.Context, uid message.GameUid, fn func(*message.Snapshot) error) (snapshot message.Snapshot, err error) {
	err = model.NewLock(s.rds, uid.LockName()).Do(ctx, func() error {
		if snapshot, err = s.Load(ctx, uid); err != nil {
			return err
		}

		if err = fn(&snapshot); err != nil {
			return err
		}

		return s.rds.SetexCtx(ctx, uid.Key(), snapshot.String(), s.expireSeconds)
	})
	return
}

func (s *RedisStore) Delete(ctx context.Context, uid message.GameUid) error {
	_, err := s.rds.DelCtx(ctx, uid.Key())
	return err
}
