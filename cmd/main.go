package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dasdy/spookydraw/cmd/spookydraw"
	"github.com/dasdy/spookydraw/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	// Wrap the concrete handler, not slog.Default().Handler(): the default one
	// routes back through the log package and deadlocks once SetDefault is called.
	slog.SetDefault(slog.New(logging.ContextHandler{
		Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelDebug),
			slogor.SetTimeFormat(time.DateTime),
			slogor.ShowSource()),
	}))

	spookydraw.Execute()
}
