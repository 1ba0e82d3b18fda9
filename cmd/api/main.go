package main

import (
	"net/http"

	"go.uber.org/zap"

	"anesthesia-board/internal/access"
	"anesthesia-board/internal/board"
	"anesthesia-board/internal/config"
	"anesthesia-board/internal/directory"
	"anesthesia-board/internal/logger"
	"anesthesia-board/internal/middleware"
	"anesthesia-board/internal/notify"
)

var (
	logg *zap.Logger

	// Board session state. One process serves one board; everything except
	// the phone directory resets on restart.
	registry *board.Registry
	gate     *access.Controller
	store    *board.Store
	breaks   *board.BreakTracker
	roster   *board.Roster
	phones   *directory.Directory
	sender   notify.Sender
)

// initState wires the session state. Tests call it directly to reset
// between cases.
func initState(secret string, backend directory.Backend) {
	logg = logger.Get()
	registry = board.DefaultRegistry()
	gate = access.NewController(secret)
	store = board.NewStore(gate, registry.Len())
	breaks = board.NewBreakTracker()
	roster = board.NewRoster(gate)
	phones = directory.New(backend, logg)
	sender = &notify.LogSender{Log: logg}
}

func openBackend() directory.Backend {
	if url := config.AppConfig.DatabaseURL; url != "" {
		backend, err := directory.OpenPostgres(url)
		if err == nil {
			return backend
		}
		logger.Get().Warn("postgres directory unavailable, falling back to file",
			zap.Error(err))
	}
	return directory.NewFileBackend(config.AppConfig.DirectoryPath)
}

func routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("ui/static"))))
	mux.HandleFunc("/", middleware.CSRF(handleBoard))
	mux.HandleFunc("/export", middleware.CSRF(handleExport))

	mux.HandleFunc("/api/board/assign", middleware.CSRF(handleAssign))
	mux.HandleFunc("/api/board/remove", middleware.CSRF(handleRemoveAssignment))
	mux.HandleFunc("/api/board/break", middleware.CSRF(handleToggleBreak))
	mux.HandleFunc("/api/board/clear", middleware.CSRF(handleClearBoard))

	mux.HandleFunc("/api/roster/add", middleware.CSRF(handleRosterAdd))
	mux.HandleFunc("/api/roster/remove", middleware.CSRF(handleRosterRemove))
	mux.HandleFunc("/api/roster/clear", middleware.CSRF(handleRosterClear))

	mux.HandleFunc("/api/directory/import", middleware.CSRF(handleDirectoryImport))
	mux.HandleFunc("/api/notify", middleware.CSRF(handleNotify))

	mux.HandleFunc("/api/mode/view", middleware.CSRF(handleEnterView))
	mux.HandleFunc("/api/mode/unlock", middleware.CSRF(handleUnlock))

	return mux
}

func main() {
	config.Load()
	logger.Initialize()

	initState(config.AppConfig.AdminPassword, openBackend())

	addr := ":" + config.AppConfig.AppPort
	logg.Info("board server started", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routes()); err != nil {
		logg.Fatal("server failed", zap.Error(err))
	}
}
