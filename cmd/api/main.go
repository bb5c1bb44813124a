package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/seatmap/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("seatmap api exited", "error", err)
		os.Exit(1)
	}
}
