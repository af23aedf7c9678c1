package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

const MoveRecodeCollectionName = "move_recode"

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	// MoveRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecodeModel.
	MoveRecodeModel interface {
		moveRecodeModel
		InsertMany(ctx context.Context, data []*MoveRecode) error
		FindByGameUid(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		*defaultMoveRecodeModel
	}
)

// NewMoveRecodeModel returns a model for the mongo.
func NewMoveRecodeModel(url, db string) MoveRecodeModel {
	conn := mon.MustNewModel(url, db, MoveRecodeCollectionName)
	return &customMoveRecodeModel{
		defaultMoveRecodeModel: newDefaultMoveRecodeModel(conn),
	}
}

func (m *customMoveRecodeModel) InsertMany(ctx context.Context, data []*MoveRecode) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	documents := make([]any, 0, len(data))
	for _, d := range data {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
			d.CreateAt = now
			d.UpdateAt = now
		}
		documents = append(documents, d)
	}

	_, err := m.conn.InsertMany(ctx, documents)
	return err
}

// FindByGameUid returns the moves of one game in play order.
func (m *customMoveRecodeModel) FindByGameUid(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode
	opts := options.Find().SetSort(bson.D{{Key: "moveNumber", Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": uid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
