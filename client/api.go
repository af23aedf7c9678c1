package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpc"
)

type (
	createGameRequest struct {
		Mode string `json:"mode"`
	}

	gameRequest struct {
		Id string `path:"id"`
	}

	moveRequest struct {
		Id        string `path:"id"`
		X         int    `json:"x"`
		Y         int    `json:"y"`
		Direction string `json:"direction"`
	}

	cell struct {
		X         int    `json:"x"`
		Y         int    `json:"y"`
		Player    string `json:"player"`
		Direction string `json:"direction"`
	}

	position struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	playerState struct {
		Player       string     `json:"player"`
		Score        int        `json:"score"`
		StableCycles int        `json:"stableCycles"`
		Territory    []position `json:"territory"`
		CanRotate    bool       `json:"canRotate"`
	}

	gameView struct {
		Id         string        `json:"id"`
		Mode       string        `json:"mode"`
		Opponent   string        `json:"opponent,optional"`
		Cells      []cell        `json:"cells"`
		NowPlayer  string        `json:"nowPlayer"`
		MoveNumber int           `json:"moveNumber"`
		MoveLimit  int           `json:"moveLimit"`
		Players    []playerState `json:"players"`
		Gashed     int           `json:"gashed"`
		CanUndo    bool          `json:"canUndo"`
		Ended      bool          `json:"ended"`
		Winner     string        `json:"winner,optional"`
		Reason     string        `json:"reason,optional"`
	}

	suggestion struct {
		Player    string `json:"player"`
		Rotate    bool   `json:"rotate"`
		X         int    `json:"x"`
		Y         int    `json:"y"`
		Direction string `json:"direction"`
	}

	apiError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

func (e apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Client talks to the game service.
type Client struct {
	Address string
}

func (c Client) call(ctx context.Context, method, path string, req, resp any) error {
	r, err := httpc.Do(ctx, method, c.Address+path, req)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode != http.StatusOK {
		e := apiError{Code: r.StatusCode}
		if err = httpc.Parse(r, &e); err != nil || e.Message == "" {
			e.Message = r.Status
		}
		return e
	}
	return httpc.Parse(r, resp)
}

func (c Client) Create(ctx context.Context, mode string) (view gameView, err error) {
	err = c.call(ctx, http.MethodPost, "/games", createGameRequest{Mode: mode}, &view)
	return
}

func (c Client) Get(ctx context.Context, id string) (view gameView, err error) {
	err = c.call(ctx, http.MethodGet, "/games/:id", gameRequest{Id: id}, &view)
	return
}

func (c Client) Place(ctx context.Context, req moveRequest) (view gameView, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/place", req, &view)
	return
}

func (c Client) Rotate(ctx context.Context, req moveRequest) (view gameView, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/rotate", req, &view)
	return
}

func (c Client) Undo(ctx context.Context, id string) (view gameView, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/undo", gameRequest{Id: id}, &view)
	return
}

func (c Client) Suggest(ctx context.Context, id string) (s suggestion, err error) {
	err = c.call(ctx, http.MethodGet, "/games/:id/suggest", gameRequest{Id: id}, &s)
	return
}
