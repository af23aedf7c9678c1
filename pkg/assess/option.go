package assess

import "math/rand"

type Option func(*Player)

// WithSource makes the player's choices reproducible.
func WithSource(source rand.Source) Option {
	return func(p *Player) {
		p.rand = rand.New(source)
	}
}

func WithSeed(seed int64) Option {
	return WithSource(rand.NewSource(seed))
}

func WithRotationChance(chance float64) Option {
	return func(p *Player) {
		p.RotationChance = chance
	}
}
