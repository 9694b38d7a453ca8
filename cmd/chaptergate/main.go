// Command chaptergate runs the onboarding engine: the reconciliation poller
// against ChapterDesk plus the wired onboarding service. Outbound messages
// go to the structured log until a chat adapter is attached.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/greekrow/chaptergate-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
