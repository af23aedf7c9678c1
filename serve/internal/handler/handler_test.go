package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/go-zero/rest/router"

	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/config"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type testServer struct {
	t       *testing.T
	svcCtx  *svc.ServiceContext
	handler http.Handler

	lock    sync.Mutex
	records []message.Record
}

func newTestServer(t *testing.T) *testServer {
	httpx.SetErrorHandlerCtx(ErrorHandler)

	s := &testServer{t: t}
	c := config.Config{SessionExpire: 3600, Seed: 7}
	s.svcCtx = svc.NewServiceContextWith(c, redistest.CreateRedis(t), func(records ...message.Record) error {
		s.lock.Lock()
		defer s.lock.Unlock()
		s.records = append(s.records, records...)
		return nil
	})

	r := router.NewRouter()
	for _, route := range Routes(s.svcCtx) {
		require.NoError(t, r.Handle(route.Method, route.Path, route.Handler))
	}
	s.handler = r
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) game(method, path, body string) types.GameResponse {
	w := s.do(method, path, body)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp types.GameResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) flush() []message.Record {
	require.NoError(s.t, s.svcCtx.RecordPusher.PushAll())
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.records
}

func TestLocalDuel(t *testing.T) {
	s := newTestServer(t)

	created := s.game(http.MethodPost, "/games", `{"mode": "local-duel"}`)
	assert.Equal(t, "local-duel", created.Mode)
	assert.Empty(t, created.Opponent)
	assert.Equal(t, "A", created.NowPlayer)
	assert.Empty(t, created.Cells)
	assert.False(t, created.CanUndo)

	base := "/games/" + created.Id
	placed := s.game(http.MethodPost, base+"/place", `{"x": 0, "y": 0, "direction": "E"}`)
	assert.Equal(t, "B", placed.NowPlayer)
	assert.Equal(t, []types.Cell{{X: 0, Y: 0, Player: "A", Direction: "E"}}, placed.Cells)
	assert.True(t, placed.CanUndo)
	require.Len(t, placed.Events, 1)

	s.game(http.MethodPost, base+"/place", `{"x": 5, "y": 5, "direction": "W"}`)
	rotated := s.game(http.MethodPost, base+"/rotate", `{"x": 0, "y": 0, "direction": "S"}`)
	assert.Equal(t, "B", rotated.NowPlayer)
	assert.False(t, rotated.Players[0].CanRotate)
	assert.True(t, rotated.Players[1].CanRotate)
	assert.True(t, rotated.Stats.RotationUsed["A"])

	loaded := s.game(http.MethodGet, base, "")
	assert.Equal(t, rotated, loaded)

	undone := s.game(http.MethodPost, base+"/undo", "")
	assert.Equal(t, "A", undone.NowPlayer)
	assert.Contains(t, undone.Cells, types.Cell{X: 0, Y: 0, Player: "A", Direction: "E"})

	records := s.flush()
	require.Len(t, records, 4)
	assert.Equal(t, message.GameStartRecord, records[0].Kind)
	for _, r := range records[1:] {
		assert.Equal(t, message.MoveRecord, r.Kind)
		assert.Equal(t, message.GameUid(created.Id), r.GameUid)
	}
}

func TestPracticeOpponentReplies(t *testing.T) {
	s := newTestServer(t)

	created := s.game(http.MethodPost, "/games", `{"mode": "practice-easy"}`)
	assert.Equal(t, "easy", created.Opponent)

	base := "/games/" + created.Id
	placed := s.game(http.MethodPost, base+"/place", `{"x": 2, "y": 2, "direction": "N"}`)
	assert.Equal(t, "A", placed.NowPlayer)
	require.Len(t, placed.Cells, 2)

	var opponent int
	for _, c := range placed.Cells {
		if c.Player == "B" {
			opponent++
		}
	}
	assert.Equal(t, 1, opponent)

	undone := s.game(http.MethodPost, base+"/undo", "")
	assert.Equal(t, "A", undone.NowPlayer)
	assert.Empty(t, undone.Cells)
	assert.False(t, undone.CanUndo)

	assert.Len(t, s.flush(), 3)
}

func TestSuggest(t *testing.T) {
	s := newTestServer(t)
	created := s.game(http.MethodPost, "/games", `{"mode": "blitz"}`)

	w := s.do(http.MethodGet, "/games/"+created.Id+"/suggest", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Player)
	assert.False(t, resp.Rotate)
	assert.NotEmpty(t, resp.Direction)
	assert.True(t, resp.X >= 0 && resp.X < 6 && resp.Y >= 0 && resp.Y < 6)
}

func TestErrors(t *testing.T) {
	s := newTestServer(t)
	created := s.game(http.MethodPost, "/games", `{"mode": "local-duel"}`)
	base := "/games/" + created.Id

	s.game(http.MethodPost, base+"/place", `{"x": 1, "y": 1, "direction": "E"}`)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"unknown mode", http.MethodPost, "/games", `{"mode": "chess"}`, http.StatusBadRequest},
		{"missing mode", http.MethodPost, "/games", `{}`, http.StatusBadRequest},
		{"malformed id", http.MethodGet, "/games/nope", "", http.StatusBadRequest},
		{"unknown game", http.MethodGet, "/games/" + string(message.NewGameUid()), "", http.StatusNotFound},
		{"bad direction", http.MethodPost, base + "/place", `{"x": 0, "y": 0, "direction": "up"}`, http.StatusBadRequest},
		{"off board", http.MethodPost, base + "/place", `{"x": 6, "y": 0, "direction": "N"}`, http.StatusBadRequest},
		{"occupied", http.MethodPost, base + "/place", `{"x": 1, "y": 1, "direction": "N"}`, http.StatusConflict},
		{"not owner", http.MethodPost, base + "/rotate", `{"x": 1, "y": 1, "direction": "N"}`, http.StatusConflict},
		{"empty cell", http.MethodPost, base + "/rotate", `{"x": 3, "y": 3, "direction": "N"}`, http.StatusConflict},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := s.do(c.method, c.path, c.body)
			assert.Equal(t, c.code, w.Code, w.Body.String())

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, c.code, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}

	after := s.game(http.MethodGet, base, "")
	assert.Len(t, after.Cells, 1)
	assert.Equal(t, "B", after.NowPlayer)
}

func TestUndoWithoutMoves(t *testing.T) {
	s := newTestServer(t)
	created := s.game(http.MethodPost, "/games", `{"mode": "puzzle", "puzzle": 3}`)
	assert.Equal(t, "puzzle(3)", created.Mode)

	w := s.do(http.MethodPost, "/games/"+created.Id+"/undo", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
