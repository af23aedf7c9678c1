package main

import (
	"flag"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/model"
)

var (
	games      = flag.Int("games", 100, "number of games to play")
	playerA    = flag.String("a", "hard", "difficulty of player A")
	playerB    = flag.String("b", "medium", "difficulty of player B")
	modeName   = flag.String("mode", "local-duel", "game mode, e.g. blitz")
	seed       = flag.Int64("seed", 0, "seed of the first game, 0 for a random one")
	workers    = flag.Int("workers", 4, "games played at once")
	configFile = flag.String("f", "etc/engine.yaml", "mongo config file, read when recording")
	record     = model.Off
)

func main() {
	flag.Var(&record, "record", "store the games in mongo (on/off)")
	flag.Parse()

	opts, err := newOptions()
	if err != nil {
		logx.Must(err)
	}

	if record {
		p := newRecordPusher(mustLoadConfig(*configFile))
		opts.records = p
		p.Start()
		defer func() {
			if err := p.Stop(); err != nil {
				logx.Errorf("flush records: %v", err)
			}
		}()
	}

	bar := model.NewBar(opts.games, "self-play", os.Stderr)
	opts.progress = func() { bar.Add(1) }

	s, err := run(opts)
	bar.Close()
	if err != nil {
		logx.Errorf("self-play: %v", err)
	}

	s.print(os.Stdout)
}
