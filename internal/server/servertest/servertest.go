// Package servertest runs a TicTacToeServer in-process over bufconn for tests.
package servertest

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "timetravel/api/tictactoe"
	"timetravel/internal/server"
	"timetravel/internal/store"
)

const bufSize = 1 << 20

// Harness holds the server, its store and a connected client.
type Harness struct {
	Server *server.TicTacToeServer
	Store  *store.GameStore
	Client pb.TicTacToeServiceClient
}

// Start serves a fresh TicTacToeServer and stops it when the test ends.
func Start(t testing.TB) *Harness {
	t.Helper()

	gameStore := store.NewGameStore(4)
	tts := server.NewTicTacToeServer(gameStore)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(server.LoggingUnaryInterceptor),
		grpc.ChainStreamInterceptor(server.LoggingStreamInterceptor),
	)
	pb.RegisterTicTacToeServiceServer(grpcServer, tts)

	listener := bufconn.Listen(bufSize)
	go grpcServer.Serve(listener)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})

	return &Harness{
		Server: tts,
		Store:  gameStore,
		Client: pb.NewTicTacToeServiceClient(conn),
	}
}
