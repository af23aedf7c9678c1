package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

// Snapshot is the stored form of a game in progress. The game itself is
// rebuilt from the actions on every load.
type Snapshot struct {
	GameUid   GameUid        `json:"gameUid"`
	Mode      chess.Mode     `json:"mode"`
	Actions   []chess.Action `json:"actions"`
	CreatedAt TimeStamp      `json:"createdAt"`
}

func NewSnapshot(uid GameUid, mode chess.Mode) Snapshot {
	return Snapshot{
		GameUid:   uid,
		Mode:      mode,
		Actions:   []chess.Action{},
		CreatedAt: Now(),
	}
}

func ParseSnapshot(str string) (newSnapshot Snapshot, err error) {
	err = sonic.UnmarshalString(str, &newSnapshot)
	return
}

func (s Snapshot) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}

func (s Snapshot) Game() (*chess.Game, error) {
	return chess.Replay(s.Mode, s.Actions)
}

// Apply plays a on g and journals it when the game accepts it.
func (s *Snapshot) Apply(g *chess.Game, a chess.Action) (chess.Report, error) {
	report, err := g.Apply(a)
	if err != nil {
		return report, err
	}
	s.Actions = append(s.Actions, a)
	return report, nil
}
