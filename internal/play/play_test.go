package play_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "timetravel/api/tictactoe"
	"timetravel/internal/game"
	"timetravel/internal/play"
	"timetravel/internal/server/servertest"
)

func runConsole(t *testing.T, backend play.Backend, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := play.NewConsole(strings.NewReader(input), &out, backend).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestConsole_Local_WinAndJump(t *testing.T) {
	backend := play.NewLocal()

	out := runConsole(t, backend, "0\n3\n1\n4\n2\n8\nj 0\nq\n")

	assert.Contains(t, out, "Winner: X")
	assert.Contains(t, out, "5. Go to move #5")

	st, err := backend.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.StepNumber())
	assert.Equal(t, 6, st.Len(), "move after the win must be ignored")
}

func TestConsole_Local_BranchAfterJump(t *testing.T) {
	backend := play.NewLocal()

	runConsole(t, backend, "0\n3\n1\njump 1\n8\n")

	st, err := backend.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, game.MarkO, st.Board().Get(8))
	assert.Equal(t, game.MarkEmpty, st.Board().Get(1))
}

func TestConsole_Hints(t *testing.T) {
	backend := play.NewLocal()

	out := runConsole(t, backend, "hello\n9\nj\nj 4\n\nn\n")

	// Once on start, then once per bad command.
	assert.Equal(t, 4, strings.Count(out, "Commands:"), out)
	assert.Contains(t, out, "no step 4 in this game")

	st, err := backend.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.New(), st)
}

func TestConsole_Remote(t *testing.T) {
	h := servertest.Start(t)
	ctx := context.Background()

	backend, err := play.NewRemote(ctx, h.Client, "")
	require.NoError(t, err)
	require.NotEmpty(t, backend.GameID())

	out := runConsole(t, backend, "4\n0\nj 7\nj 1\nq\n")

	assert.Contains(t, out, "Next player: O")
	assert.Contains(t, out, "no step 7 in this game")

	resp, err := h.Client.GetGame(ctx, &pb.GetGameRequest{GameID: backend.GameID()})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Game.StepNumber)
	assert.Len(t, resp.Game.History, 3)

	// Reset replaces the server-side game
	oldID := backend.GameID()
	st, err := backend.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, game.New(), st)
	assert.NotEqual(t, oldID, backend.GameID())
	assert.Equal(t, 1, h.Store.Count())

	require.NoError(t, backend.Close(ctx))
	assert.Equal(t, 0, h.Store.Count())
}

func TestNewRemote_UnknownGame(t *testing.T) {
	h := servertest.Start(t)

	_, err := play.NewRemote(context.Background(), h.Client, "nonexistent")
	assert.Error(t, err)
}

func TestStateFromProto(t *testing.T) {
	st := game.New().ApplyMove(4).ApplyMove(0)

	g := &pb.Game{StepNumber: 2}
	for _, step := range st.History() {
		board := make([]pb.Mark, game.Cells)
		for i, m := range step.Board {
			board[i] = pb.Mark(wireMark(m))
		}
		g.History = append(g.History, &pb.Step{Board: board, XIsNext: step.XIsNext})
	}

	got, err := play.StateFromProto(g)
	require.NoError(t, err)
	assert.Equal(t, st.History(), got.History())
	assert.Equal(t, 2, got.StepNumber())

	g.History[1].Board = g.History[1].Board[:3]
	_, err = play.StateFromProto(g)
	assert.Error(t, err)

	_, err = play.StateFromProto(nil)
	assert.Error(t, err)
}

func wireMark(m game.Mark) string {
	if m == game.MarkEmpty {
		return ""
	}
	return m.String()
}
