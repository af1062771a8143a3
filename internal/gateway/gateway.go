// Package gateway exposes the TicTacToeService over REST on a grpc-gateway
// ServeMux, forwarding each request to a gRPC client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "timetravel/api/tictactoe"
)

// Prefix is where the REST API is mounted.
const Prefix = "/api/v1"

var marshaler = &runtime.JSONBuiltin{}

type handler struct {
	mux    *runtime.ServeMux
	client pb.TicTacToeServiceClient
}

// Register mounts the REST routes on mux.
func Register(mux *runtime.ServeMux, client pb.TicTacToeServiceClient) error {
	h := &handler{mux: mux, client: client}

	routes := []struct {
		method  string
		pattern string
		fn      runtime.HandlerFunc
	}{
		{http.MethodPost, Prefix + "/games", h.newGame},
		{http.MethodGet, Prefix + "/games", h.listGames},
		{http.MethodGet, Prefix + "/games/{game_id}", h.getGame},
		{http.MethodDelete, Prefix + "/games/{game_id}", h.deleteGame},
		{http.MethodPost, Prefix + "/games/{game_id}/moves", h.play},
		{http.MethodPost, Prefix + "/games/{game_id}/jump", h.jumpTo},
		{http.MethodGet, Prefix + "/games/{game_id}/board", h.getBoard},
	}

	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.fn); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func (h *handler) newGame(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, ok := h.annotate(w, r, pb.NewGameMethod)
	if !ok {
		return
	}
	resp, err := h.client.NewGame(ctx, &pb.NewGameRequest{})
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) listGames(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, ok := h.annotate(w, r, pb.ListGamesMethod)
	if !ok {
		return
	}

	req := &pb.ListGamesRequest{}
	q := r.URL.Query()
	for name, dst := range map[string]*int32{"limit": &req.Limit, "offset": &req.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			h.fail(ctx, w, r, status.Errorf(codes.InvalidArgument, "%s must be an integer", name))
			return
		}
		*dst = int32(n)
	}

	resp, err := h.client.ListGames(ctx, req)
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) getGame(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx, ok := h.annotate(w, r, pb.GetGameMethod)
	if !ok {
		return
	}
	resp, err := h.client.GetGame(ctx, &pb.GetGameRequest{GameID: params["game_id"]})
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) deleteGame(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx, ok := h.annotate(w, r, pb.DeleteGameMethod)
	if !ok {
		return
	}
	resp, err := h.client.DeleteGame(ctx, &pb.DeleteGameRequest{GameID: params["game_id"]})
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) play(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx, ok := h.annotate(w, r, pb.PlayMethod)
	if !ok {
		return
	}

	var body struct {
		Cell *int32 `json:"cell"`
	}
	if err := marshaler.NewDecoder(r.Body).Decode(&body); err != nil || body.Cell == nil {
		h.fail(ctx, w, r, status.Error(codes.InvalidArgument, `body must be {"cell": n}`))
		return
	}

	resp, err := h.client.Play(ctx, &pb.PlayRequest{GameID: params["game_id"], Cell: *body.Cell})
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) jumpTo(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx, ok := h.annotate(w, r, pb.JumpToMethod)
	if !ok {
		return
	}

	var body struct {
		Step *int32 `json:"step"`
	}
	if err := marshaler.NewDecoder(r.Body).Decode(&body); err != nil || body.Step == nil {
		h.fail(ctx, w, r, status.Error(codes.InvalidArgument, `body must be {"step": n}`))
		return
	}

	resp, err := h.client.JumpTo(ctx, &pb.JumpToRequest{GameID: params["game_id"], Step: *body.Step})
	h.respond(ctx, w, r, resp, err)
}

func (h *handler) getBoard(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx, ok := h.annotate(w, r, pb.GetBoardMethod)
	if !ok {
		return
	}

	body, err := h.client.GetBoard(ctx, &pb.GetBoardRequest{GameID: params["game_id"]})
	if err != nil {
		h.fail(ctx, w, r, err)
		return
	}

	w.Header().Set("Content-Type", body.GetContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(body.GetData())
}

// annotate copies incoming HTTP headers into gRPC metadata
func (h *handler) annotate(w http.ResponseWriter, r *http.Request, method string) (context.Context, bool) {
	ctx, err := runtime.AnnotateContext(r.Context(), h.mux, r, method)
	if err != nil {
		h.fail(r.Context(), w, r, err)
		return nil, false
	}
	return ctx, true
}

func (h *handler) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, resp any, err error) {
	if err != nil {
		h.fail(ctx, w, r, err)
		return
	}

	buf, err := marshaler.Marshal(resp)
	if err != nil {
		h.fail(ctx, w, r, status.Errorf(codes.Internal, "marshal response: %v", err))
		return
	}

	w.Header().Set("Content-Type", marshaler.ContentType(resp))
	w.WriteHeader(http.StatusOK)
	w.Write(buf)
}

func (h *handler) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	runtime.HTTPError(ctx, h.mux, marshaler, w, r, err)
}
