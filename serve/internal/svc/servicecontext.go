package svc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/env"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/pkg/models/message/moverecord"
	"github.com/HuXin0817/circuit-lines/pkg/models/pusher"
	"github.com/HuXin0817/circuit-lines/pkg/models/session"
	"github.com/HuXin0817/circuit-lines/serve/internal/config"
)

// OpponentSide is the side the built-in opponent plays in practice modes.
const OpponentSide = chess.PlayerB

type ServiceContext struct {
	Config        config.Config
	RedisClient   *redis.Redis
	Store         session.Store
	RecordPusher  *pusher.Pusher[message.Record]
	playerOptions []assess.Option
}

func NewServiceContext(c config.Config) *ServiceContext {
	c.Redis.Pass = env.Or(c.Redis.Pass, env.RedisPassWord)
	c.MongoConf.PassWord = env.Or(c.MongoConf.PassWord, env.MongoPassWord)
	if strings.Contains(c.MongoConf.Url, "%s") {
		c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
	}

	rds := redis.MustNewRedis(c.Redis)
	svcCtx := NewServiceContextWith(c, rds, RecordLogic(c))
	svcCtx.RecordPusher.Start()
	return svcCtx
}

// NewServiceContextWith wires a service around an existing redis client and
// record sink.
func NewServiceContextWith(c config.Config, rds *redis.Redis, pushLogic func(...message.Record) error) *ServiceContext {
	return &ServiceContext{
		Config:      c,
		RedisClient: rds,
		Store:       session.NewRedisStore(rds, c.SessionExpire),
		RecordPusher: pusher.NewPusher(
			pusher.WithPushLogic(pushLogic),
			pusher.WithPushInterval[message.Record](time.Duration(c.RecordInterval)*time.Millisecond),
			pusher.WithErrorHandler[message.Record](func(err error) {
				logx.Errorf("store game records: %v", err)
			}),
		),
	}
}

// RecordLogic stores records in mongo, or only logs them when no mongo url
// is configured.
func RecordLogic(c config.Config) func(...message.Record) error {
	if c.MongoConf.Url == "" {
		return func(records ...message.Record) error {
			for _, r := range records {
				logx.Debugf("record %s", r)
			}
			return nil
		}
	}

	recorder := moverecord.NewRecorder(c.MongoConf.Url, c.MongoConf.DataBaseName)
	return func(records ...message.Record) error {
		return recorder.Save(context.Background(), records...)
	}
}

// Opponent returns the built-in player for a practice game. With a
// configured seed its choice depends only on the seed and the move number.
func (s *ServiceContext) Opponent(difficulty assess.Difficulty, side chess.Player, moveNumber int) *assess.Player {
	var options []assess.Option
	if s.Config.Seed != 0 {
		options = append(options, assess.WithSeed(s.Config.Seed+int64(moveNumber)))
	}
	options = append(options, s.playerOptions...)
	return assess.NewPlayer(difficulty, side, options...)
}

// WithPlayerOptions adds options to every opponent the service creates.
func (s *ServiceContext) WithPlayerOptions(options ...assess.Option) *ServiceContext {
	s.playerOptions = append(s.playerOptions, options...)
	return s
}

func (s *ServiceContext) Close() {
	if err := s.RecordPusher.Stop(); err != nil {
		logx.Errorf("flush records: %v", err)
	}
}
