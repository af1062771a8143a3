package server

import (
	pb "timetravel/api/tictactoe"
	"timetravel/internal/game"
	"timetravel/internal/view"
)

// gameToProto converts a SessionSnapshot to the wire Game message
func gameToProto(snapshot game.SessionSnapshot) *pb.Game {
	st := snapshot.State
	current := st.Current()
	status := st.Status()

	history := make([]*pb.Step, 0, st.Len())
	for _, step := range st.History() {
		history = append(history, stepToProto(step))
	}

	moves := make([]string, 0, st.Len())
	for _, m := range view.Moves(st) {
		moves = append(moves, m.Label)
	}

	g := &pb.Game{
		GameID:     snapshot.ID,
		History:    history,
		StepNumber: int32(st.StepNumber()),
		Board:      boardToProto(current.Board),
		XIsNext:    current.XIsNext,
		Status:     status.String(),
		Winner:     markToProto(status.Winner),
		BoardFull:  current.Board.IsFull(),
		Moves:      moves,
		CreatedAt:  snapshot.CreatedAt.Unix(),
		UpdatedAt:  snapshot.UpdatedAt.Unix(),
	}

	if line, _, ok := current.Board.WinningLine(); ok {
		g.WinningLine = []int32{int32(line[0]), int32(line[1]), int32(line[2])}
	}

	return g
}

// stepToProto converts a recorded step
func stepToProto(step game.Step) *pb.Step {
	return &pb.Step{
		Board:   boardToProto(step.Board),
		XIsNext: step.XIsNext,
	}
}

// boardToProto converts a board to its nine wire marks
func boardToProto(b game.Board) []pb.Mark {
	board := make([]pb.Mark, len(b))
	for i, cell := range b {
		board[i] = markToProto(cell)
	}
	return board
}

// markToProto converts a game.Mark to its wire form
func markToProto(m game.Mark) pb.Mark {
	switch m {
	case game.MarkX:
		return pb.MarkX
	case game.MarkO:
		return pb.MarkO
	default:
		return pb.MarkEmpty
	}
}
