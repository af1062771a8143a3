package play

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "timetravel/api/tictactoe"
	"timetravel/internal/game"
)

// Backend owns the live game the console shows.
type Backend interface {
	State(ctx context.Context) (game.State, error)
	Click(ctx context.Context, cell int) (game.State, error)
	Jump(ctx context.Context, step int) (game.State, error)
	Reset(ctx context.Context) (game.State, error)
}

// Local keeps the game in memory, replacing the state on every event.
type Local struct {
	state game.State
}

// NewLocal starts a local game.
func NewLocal() *Local {
	return &Local{state: game.New()}
}

func (l *Local) State(context.Context) (game.State, error) {
	return l.state, nil
}

func (l *Local) Click(_ context.Context, cell int) (game.State, error) {
	l.state = l.state.ApplyMove(cell)
	return l.state, nil
}

func (l *Local) Jump(_ context.Context, step int) (game.State, error) {
	next, err := l.state.JumpTo(step)
	if err != nil {
		return l.state, err
	}
	l.state = next
	return l.state, nil
}

func (l *Local) Reset(context.Context) (game.State, error) {
	l.state = game.New()
	return l.state, nil
}

// Remote plays a game held by a TicTacToeService.
type Remote struct {
	client pb.TicTacToeServiceClient
	gameID string
}

// NewRemote attaches to gameID, or starts a new game when gameID is empty.
func NewRemote(ctx context.Context, client pb.TicTacToeServiceClient, gameID string) (*Remote, error) {
	r := &Remote{client: client, gameID: gameID}
	if gameID == "" {
		if _, err := r.start(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}
	if _, err := r.State(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// GameID returns the server-side ID of the current game.
func (r *Remote) GameID() string {
	return r.gameID
}

func (r *Remote) start(ctx context.Context) (game.State, error) {
	resp, err := r.client.NewGame(ctx, &pb.NewGameRequest{})
	if err != nil {
		return game.State{}, fmt.Errorf("new game: %w", err)
	}
	r.gameID = resp.Game.GameID
	return StateFromProto(resp.Game)
}

func (r *Remote) State(ctx context.Context) (game.State, error) {
	resp, err := r.client.GetGame(ctx, &pb.GetGameRequest{GameID: r.gameID})
	if err != nil {
		return game.State{}, fmt.Errorf("get game: %w", err)
	}
	return StateFromProto(resp.Game)
}

func (r *Remote) Click(ctx context.Context, cell int) (game.State, error) {
	resp, err := r.client.Play(ctx, &pb.PlayRequest{GameID: r.gameID, Cell: int32(cell)})
	if err != nil {
		return game.State{}, fmt.Errorf("play: %w", err)
	}
	return StateFromProto(resp.Game)
}

func (r *Remote) Jump(ctx context.Context, step int) (game.State, error) {
	resp, err := r.client.JumpTo(ctx, &pb.JumpToRequest{GameID: r.gameID, Step: int32(step)})
	if err != nil {
		if status.Code(err) == codes.OutOfRange {
			return game.State{}, fmt.Errorf("%w: %s", game.ErrStepOutOfRange, status.Convert(err).Message())
		}
		return game.State{}, fmt.Errorf("jump: %w", err)
	}
	return StateFromProto(resp.Game)
}

// Reset ends the current game on the server and starts another.
func (r *Remote) Reset(ctx context.Context) (game.State, error) {
	_, err := r.client.DeleteGame(ctx, &pb.DeleteGameRequest{GameID: r.gameID})
	if err != nil && status.Code(err) != codes.NotFound {
		return game.State{}, fmt.Errorf("delete game: %w", err)
	}
	return r.start(ctx)
}

// Close ends the game on the server.
func (r *Remote) Close(ctx context.Context) error {
	_, err := r.client.DeleteGame(ctx, &pb.DeleteGameRequest{GameID: r.gameID})
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}

// StateFromProto rebuilds a game.State from its wire form.
func StateFromProto(g *pb.Game) (game.State, error) {
	if g == nil {
		return game.State{}, errors.New("missing game")
	}

	history := make([]game.Step, len(g.History))
	for i, step := range g.History {
		if step == nil || len(step.Board) != game.Cells {
			return game.State{}, fmt.Errorf("step %d: board must have %d cells", i, game.Cells)
		}
		for j, m := range step.Board {
			mark, err := game.ParseMark(string(m))
			if err != nil {
				return game.State{}, fmt.Errorf("step %d cell %d: %w", i, j, err)
			}
			history[i].Board[j] = mark
		}
		history[i].XIsNext = step.XIsNext
	}

	return game.Restore(history, int(g.StepNumber))
}
