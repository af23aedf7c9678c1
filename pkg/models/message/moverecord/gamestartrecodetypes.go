package moverecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid  message.GameUid `bson:"gameUid" json:"gameUid"`
	Mode     string          `bson:"mode" json:"mode"`
	Opponent string          `bson:"opponent,omitempty" json:"opponent,omitempty"`
}
