package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Redis     redis.RedisConf
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=circuit_lines"`
		PassWord     string `json:",optional"`
	}

	// SessionExpire is how long an idle game is kept, in seconds.
	SessionExpire int `json:",default=86400"`

	// RecordInterval is the flush period of the record pusher, in milliseconds.
	RecordInterval int64 `json:",default=1000"`

	Pprof string `json:",optional"`

	// Seed fixes the opponent's choices when non-zero.
	Seed int64 `json:",optional"`
}
