package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "timetravel/api/tictactoe"
	"timetravel/internal/config"
	"timetravel/internal/play"
)

func main() {
	cfg, err := config.LoadClient(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var backend play.Backend = play.NewLocal()
	if cfg.Addr != "" {
		conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			log.Fatalf("Failed to dial %s: %v", cfg.Addr, err)
		}
		defer conn.Close()

		remote, err := play.NewRemote(ctx, pb.NewTicTacToeServiceClient(conn), cfg.GameID)
		if err != nil {
			log.Fatalf("Failed to open game: %v", err)
		}
		log.Printf("Playing game %s on %s", remote.GameID(), cfg.Addr)
		backend = remote
	}

	if err := play.NewConsole(os.Stdin, os.Stdout, backend).Run(ctx); err != nil {
		log.Fatalf("Game ended: %v", err)
	}
}
