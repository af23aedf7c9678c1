package main

import (
	"fmt"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/pkg/models/pusher"
)

type options struct {
	games    int
	a, b     assess.Difficulty
	mode     chess.Mode
	seed     int64
	workers  int
	records  *pusher.Pusher[message.Record]
	progress func()
}

func newOptions() (opts options, err error) {
	opts = options{games: *games, seed: *seed, workers: *workers}
	if opts.games <= 0 {
		return opts, fmt.Errorf("games must be positive, got %d", opts.games)
	}

	var ok bool
	if opts.a, ok = assess.ParseDifficulty(*playerA); !ok {
		return opts, fmt.Errorf("unknown difficulty %q", *playerA)
	}
	if opts.b, ok = assess.ParseDifficulty(*playerB); !ok {
		return opts, fmt.Errorf("unknown difficulty %q", *playerB)
	}
	if opts.mode, err = chess.ParseMode(*modeName); err != nil {
		return opts, err
	}
	return opts, nil
}

// players seats the two sides of game i. With a seed every game is
// reproducible on its own.
func (o options) players(i int) (a, b *assess.Player) {
	var seedA, seedB []assess.Option
	if o.seed != 0 {
		seedA = append(seedA, assess.WithSeed(o.seed+2*int64(i)))
		seedB = append(seedB, assess.WithSeed(o.seed+2*int64(i)+1))
	}
	return assess.NewPlayer(o.a, chess.PlayerA, seedA...), assess.NewPlayer(o.b, chess.PlayerB, seedB...)
}

func (o options) play(i int) (*chess.Game, error) {
	g := chess.NewGame(o.mode)
	a, b := o.players(i)
	if err := assess.SelfPlay(g, a, b); err != nil {
		return g, fmt.Errorf("game %d: %w", i, err)
	}
	return g, nil
}

// run plays the games on o.workers goroutines and tallies them. Failed games
// are logged and left out of the summary.
func run(o options) (*summary, error) {
	var (
		lock     sync.Mutex
		s        = newSummary(o)
		firstErr error
	)

	mr.ForEach(func(source chan<- int) {
		for i := range o.games {
			source <- i
		}
	}, func(i int) {
		g, err := o.play(i)

		lock.Lock()
		defer lock.Unlock()
		if o.progress != nil {
			o.progress()
		}
		if err != nil {
			logx.Error(err)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		s.add(g)

		if o.records != nil {
			uid := message.NewGameUid()
			o.records.AddMessages(
				message.NewGameStartRecord(uid, g.Mode, fmt.Sprintf("%s vs %s", o.a, o.b)),
				message.NewGameEndRecord(uid, g),
			)
		}
	}, mr.WithWorkers(max(o.workers, 1)))

	return s, firstErr
}
