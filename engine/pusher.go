package main

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/pkg/models/message/moverecord"
	"github.com/HuXin0817/circuit-lines/pkg/models/pusher"
)

func newRecordPusher(c Config) *pusher.Pusher[message.Record] {
	recorder := moverecord.NewRecorder(c.MongoConf.Url, c.MongoConf.DataBaseName)
	return pusher.NewPusher(
		pusher.WithPushInterval[message.Record](time.Second),
		pusher.WithErrorHandler[message.Record](func(err error) {
			logx.Errorf("record self-play games: %v", err)
		}),
		pusher.WithPushLogic(func(records ...message.Record) error {
			return recorder.Save(context.Background(), records...)
		}),
	)
}
