package moverecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid    message.GameUid `bson:"gameUid" json:"gameUid"`
	MoveNumber int             `bson:"moveNumber" json:"moveNumber"`
	Player     string          `bson:"player" json:"player"`
	Event      string          `bson:"event" json:"event"`
	ScoreA     int             `bson:"scoreA" json:"scoreA"`
	ScoreB     int             `bson:"scoreB" json:"scoreB"`
	Gashed     int             `bson:"gashed" json:"gashed"`
}
