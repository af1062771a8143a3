// Package tictactoe defines the wire messages and gRPC service for playing
// tic-tac-toe with move history.
package tictactoe

// Mark is the content of a cell on the wire.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Step is one recorded position.
type Step struct {
	Board   []Mark `json:"board"`
	XIsNext bool   `json:"x_is_next"`
}

// Game is the full view of a session.
type Game struct {
	GameID      string   `json:"game_id"`
	History     []*Step  `json:"history"`
	StepNumber  int32    `json:"step_number"`
	Board       []Mark   `json:"board"`
	XIsNext     bool     `json:"x_is_next"`
	Status      string   `json:"status"`
	Winner      Mark     `json:"winner,omitempty"`
	WinningLine []int32  `json:"winning_line,omitempty"`
	BoardFull   bool     `json:"board_full"`
	Moves       []string `json:"moves"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

type NewGameRequest struct{}

type NewGameResponse struct {
	Game *Game `json:"game"`
}

type GetGameRequest struct {
	GameID string `json:"game_id"`
}

type GetGameResponse struct {
	Game *Game `json:"game"`
}

type ListGamesRequest struct {
	Limit  int32 `json:"limit,omitempty"`
	Offset int32 `json:"offset,omitempty"`
}

type ListGamesResponse struct {
	Games      []*Game `json:"games"`
	TotalCount int32   `json:"total_count"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Cell   int32  `json:"cell"`
}

// PlayResponse reports the game after the move. Accepted is false when the
// cell was taken or the game already had a winner; Game is then unchanged.
type PlayResponse struct {
	Game     *Game `json:"game"`
	Accepted bool  `json:"accepted"`
}

type JumpToRequest struct {
	GameID string `json:"game_id"`
	Step   int32  `json:"step"`
}

type JumpToResponse struct {
	Game *Game `json:"game"`
}

type GetBoardRequest struct {
	GameID string `json:"game_id"`
}

type DeleteGameRequest struct {
	GameID string `json:"game_id"`
}

type DeleteGameResponse struct{}

type StreamGameUpdatesRequest struct {
	GameID string `json:"game_id"`
}

type GameUpdate struct {
	Game    *Game  `json:"game"`
	Message string `json:"message"`
}
