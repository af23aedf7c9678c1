package message

import (
	"fmt"

	"github.com/google/uuid"
)

const keyPrefix = "circuit-lines"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// ParseGameUid accepts only ids made by NewGameUid.
func ParseGameUid(s string) (GameUid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid game uid %q: %w", s, err)
	}
	return GameUid(id.String()), nil
}

func (g GameUid) Key() string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, g)
}

func (g GameUid) LockName() string {
	return fmt.Sprintf("%s:game:%s:lock", keyPrefix, g)
}
