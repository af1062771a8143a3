package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "timetravel/api/tictactoe"
	"timetravel/internal/game"
	"timetravel/internal/store"
	"timetravel/internal/view"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// TicTacToeServer implements the gRPC TicTacToeService
type TicTacToeServer struct {
	pb.UnimplementedTicTacToeServiceServer

	gameStore *store.GameStore

	// Subscribers for game updates (gameID -> set of channels)
	subscribersMu sync.Mutex
	subscribers   map[string]map[chan *pb.GameUpdate]struct{}
	// Highest session version sent to subscribers, per game
	published map[string]uint64
}

// NewTicTacToeServer creates a new server instance
func NewTicTacToeServer(gameStore *store.GameStore) *TicTacToeServer {
	return &TicTacToeServer{
		gameStore:   gameStore,
		subscribers: make(map[string]map[chan *pb.GameUpdate]struct{}),
		published:   make(map[string]uint64),
	}
}

// NewGame starts a session at the empty board with X to move
func (s *TicTacToeServer) NewGame(ctx context.Context, req *pb.NewGameRequest) (*pb.NewGameResponse, error) {
	sess := game.NewSession(uuid.New().String())
	if err := s.gameStore.Create(sess); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to store game: %v", err)
	}

	return &pb.NewGameResponse{
		Game: gameToProto(sess.GetSnapshot()),
	}, nil
}

// GetGame retrieves the current state of a game
func (s *TicTacToeServer) GetGame(ctx context.Context, req *pb.GetGameRequest) (*pb.GetGameResponse, error) {
	sess, err := s.getSession(req.GameID)
	if err != nil {
		return nil, err
	}

	return &pb.GetGameResponse{
		Game: gameToProto(sess.GetSnapshot()),
	}, nil
}

// ListGames returns live sessions, newest first
func (s *TicTacToeServer) ListGames(ctx context.Context, req *pb.ListGamesRequest) (*pb.ListGamesResponse, error) {
	limit := int(req.Limit)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	offset := int(req.Offset)
	if offset < 0 {
		offset = 0
	}

	snapshots, totalCount := s.gameStore.List(limit, offset)

	pbGames := make([]*pb.Game, len(snapshots))
	for i, snap := range snapshots {
		pbGames[i] = gameToProto(snap)
	}

	return &pb.ListGamesResponse{
		Games:      pbGames,
		TotalCount: int32(totalCount),
	}, nil
}

// Play places the next mark on a cell. Moves on an occupied cell or after a
// win are not errors: the game comes back unchanged with Accepted unset.
func (s *TicTacToeServer) Play(ctx context.Context, req *pb.PlayRequest) (*pb.PlayResponse, error) {
	if !game.ValidCell(int(req.Cell)) {
		return nil, status.Errorf(codes.InvalidArgument, "cell must be between 0 and %d", game.Cells-1)
	}

	sess, err := s.getSession(req.GameID)
	if err != nil {
		return nil, err
	}

	snapshot, accepted := sess.Play(int(req.Cell))
	if accepted {
		s.publish(snapshot, getUpdateMessage(snapshot.State))
	}

	return &pb.PlayResponse{
		Game:     gameToProto(snapshot),
		Accepted: accepted,
	}, nil
}

// JumpTo moves the displayed step of a game
func (s *TicTacToeServer) JumpTo(ctx context.Context, req *pb.JumpToRequest) (*pb.JumpToResponse, error) {
	sess, err := s.getSession(req.GameID)
	if err != nil {
		return nil, err
	}

	snapshot, err := sess.JumpTo(int(req.Step))
	if err != nil {
		if errors.Is(err, game.ErrStepOutOfRange) {
			return nil, status.Error(codes.OutOfRange, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to jump: %v", err)
	}

	s.publish(snapshot, view.MoveLabel(snapshot.State.StepNumber()))

	return &pb.JumpToResponse{
		Game: gameToProto(snapshot),
	}, nil
}

// GetBoard renders the game as text: grid, status line and move list
func (s *TicTacToeServer) GetBoard(ctx context.Context, req *pb.GetBoardRequest) (*httpbody.HttpBody, error) {
	sess, err := s.getSession(req.GameID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := view.Render(&buf, sess.State(), false); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to render board: %v", err)
	}

	return &httpbody.HttpBody{
		ContentType: "text/plain; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// DeleteGame ends a session
func (s *TicTacToeServer) DeleteGame(ctx context.Context, req *pb.DeleteGameRequest) (*pb.DeleteGameResponse, error) {
	if req.GameID == "" {
		return nil, status.Error(codes.InvalidArgument, "game_id is required")
	}

	if err := s.gameStore.Delete(req.GameID); err != nil {
		if errors.Is(err, store.ErrGameNotFound) {
			return nil, status.Error(codes.NotFound, "game not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete game: %v", err)
	}

	s.broadcastClosed(req.GameID)
	return &pb.DeleteGameResponse{}, nil
}

// StreamGameUpdates streams game state updates until the game is deleted or
// the client goes away
func (s *TicTacToeServer) StreamGameUpdates(req *pb.StreamGameUpdatesRequest, stream pb.StreamGameUpdatesServer) error {
	sess, err := s.getSession(req.GameID)
	if err != nil {
		return err
	}

	// Create channel for updates
	updateCh := make(chan *pb.GameUpdate, 10)
	s.subscribe(req.GameID, updateCh)
	defer s.unsubscribe(req.GameID, updateCh)

	// Send initial state
	if err := stream.Send(&pb.GameUpdate{
		Game:    gameToProto(sess.GetSnapshot()),
		Message: "Connected to game",
	}); err != nil {
		return err
	}

	// Stream updates
	for {
		select {
		case update := <-updateCh:
			if err := stream.Send(update); err != nil {
				return err
			}
			// A final update without a game means the session is gone
			if update.Game == nil {
				return nil
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// getSession validates the ID and looks the session up
func (s *TicTacToeServer) getSession(gameID string) (*game.Session, error) {
	if gameID == "" {
		return nil, status.Error(codes.InvalidArgument, "game_id is required")
	}

	sess, err := s.gameStore.Get(gameID)
	if err != nil {
		if errors.Is(err, store.ErrGameNotFound) {
			return nil, status.Error(codes.NotFound, "game not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get game: %v", err)
	}
	return sess, nil
}

// subscribe adds a channel to receive updates for a game
func (s *TicTacToeServer) subscribe(gameID string, ch chan *pb.GameUpdate) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()

	if s.subscribers[gameID] == nil {
		s.subscribers[gameID] = make(map[chan *pb.GameUpdate]struct{})
	}
	s.subscribers[gameID][ch] = struct{}{}
}

// unsubscribe removes a channel from receiving updates
func (s *TicTacToeServer) unsubscribe(gameID string, ch chan *pb.GameUpdate) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()

	if subs, ok := s.subscribers[gameID]; ok {
		delete(subs, ch)
		if len(subs) == 0 {
			delete(s.subscribers, gameID)
		}
	}
	close(ch)
}

// publish broadcasts a session change. Snapshots older than one already
// sent are dropped so subscribers never see the game go backwards.
func (s *TicTacToeServer) publish(snapshot game.SessionSnapshot, message string) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()

	if snapshot.Version <= s.published[snapshot.ID] {
		return
	}
	s.published[snapshot.ID] = snapshot.Version
	s.sendLocked(snapshot.ID, &pb.GameUpdate{
		Game:    gameToProto(snapshot),
		Message: message,
	})
}

// sendLocked sends an update to all subscribers of a game. The caller holds
// subscribersMu.
func (s *TicTacToeServer) sendLocked(gameID string, update *pb.GameUpdate) {
	if subs, ok := s.subscribers[gameID]; ok {
		for ch := range subs {
			select {
			case ch <- update:
			default:
				// Channel full, skip (non-blocking)
			}
		}
	}
}

// broadcastClosed tells subscribers the game no longer exists
func (s *TicTacToeServer) broadcastClosed(gameID string) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()

	delete(s.published, gameID)
	s.sendLocked(gameID, &pb.GameUpdate{
		Message: fmt.Sprintf("Game %s closed", gameID),
	})
}

// getUpdateMessage generates a human-readable message for a game state
func getUpdateMessage(state game.State) string {
	st := state.Status()
	if st.Finished() {
		return fmt.Sprintf("Player %s wins!", st.Winner)
	}
	return fmt.Sprintf("Player %s's turn", st.Next)
}
