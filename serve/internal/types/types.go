package types

type CreateGameRequest struct {
	Mode   string `json:"mode"`
	Puzzle int    `json:"puzzle,optional"`
}

type GameRequest struct {
	Id string `path:"id"`
}

type MoveRequest struct {
	Id        string `path:"id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Cell struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Player    string `json:"player"`
	Direction string `json:"direction"`
}

type Cycle struct {
	Positions []Position `json:"positions"`
	Stable    bool       `json:"stable"`
}

type PlayerState struct {
	Player       string     `json:"player"`
	Score        int        `json:"score"`
	StableCycles int        `json:"stableCycles"`
	Cycles       []Cycle    `json:"cycles"`
	Territory    []Position `json:"territory"`
	CanRotate    bool       `json:"canRotate"`
}

type Stats struct {
	TotalMoves      int             `json:"totalMoves"`
	SegmentsGashed  int             `json:"segmentsGashed"`
	CyclesCreated   map[string]int  `json:"cyclesCreated"`
	CyclesDestroyed map[string]int  `json:"cyclesDestroyed"`
	RotationUsed    map[string]bool `json:"rotationUsed"`
}

type GameResponse struct {
	Id         string        `json:"id"`
	Mode       string        `json:"mode"`
	Opponent   string        `json:"opponent,omitempty"`
	Cells      []Cell        `json:"cells"`
	NowPlayer  string        `json:"nowPlayer"`
	MoveNumber int           `json:"moveNumber"`
	MoveLimit  int           `json:"moveLimit"`
	Players    []PlayerState `json:"players"`
	Gashed     int           `json:"gashed"`
	CanUndo    bool          `json:"canUndo"`
	Ended      bool          `json:"ended"`
	Winner     string        `json:"winner,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	Stats      Stats         `json:"stats"`
	Events     []any         `json:"events"`
}

type SuggestResponse struct {
	Player    string `json:"player"`
	Rotate    bool   `json:"rotate"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
