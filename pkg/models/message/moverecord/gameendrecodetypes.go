package moverecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid         message.GameUid `bson:"gameUid" json:"gameUid"`
	Mode            string          `bson:"mode" json:"mode"`
	Winner          string          `bson:"winner" json:"winner"`
	Reason          string          `bson:"reason" json:"reason"`
	ScoreA          int             `bson:"scoreA" json:"scoreA"`
	ScoreB          int             `bson:"scoreB" json:"scoreB"`
	TotalMoves      int             `bson:"totalMoves" json:"totalMoves"`
	SegmentsGashed  int             `bson:"segmentsGashed" json:"segmentsGashed"`
	CyclesCreated   map[string]int  `bson:"cyclesCreated" json:"cyclesCreated"`
	CyclesDestroyed map[string]int  `bson:"cyclesDestroyed" json:"cyclesDestroyed"`
	RotationUsed    map[string]bool `bson:"rotationUsed" json:"rotationUsed"`
}
