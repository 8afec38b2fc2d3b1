package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibecheck/internal/chat"
	"vibecheck/internal/config"
	"vibecheck/internal/mood"
	"vibecheck/internal/provider"
	"vibecheck/internal/session"
	"vibecheck/internal/types"
	"vibecheck/internal/ux"
)

func defaultSettingsPath() (string, error) {
	return config.Path()
}

// chatApp wires the pipeline, log, tracker, and renderer for the REPL.
// Settings are swapped under a mutex when the watcher reports a change; each
// send builds its router from the settings current at that moment.
type chatApp struct {
	mu       sync.Mutex
	settings types.Settings

	client  provider.CompletionClient
	log     *chat.Log
	tracker *session.Tracker
	render  *ux.Renderer
	logger  *zap.Logger
}

func (a *chatApp) currentSettings() types.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

func (a *chatApp) swapSettings(s types.Settings) {
	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()
}

// pipeline builds a pipeline over the settings as of now.
func (a *chatApp) pipeline() *chat.Pipeline {
	router := provider.NewRouter(a.currentSettings(), a.client, a.logger)
	return chat.NewPipeline(router, a.logger)
}

func runChat(ctx context.Context) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}

	app := &chatApp{
		settings: settings,
		client:   provider.NewHTTPClient(logger),
		log:      chat.NewLog(),
		tracker:  session.NewTracker(session.Config{Logger: logger}),
		render:   ux.NewRenderer(),
		logger:   logger,
	}
	defer app.tracker.Close()

	watcher, err := config.NewWatcher(settingsPath, app.swapSettings, logger)
	if err == nil {
		if err := watcher.Start(); err == nil {
			defer watcher.Stop()
		}
	}

	fmt.Println("VibeCheck — type a message, or /help for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if quit := app.handleCommand(line); quit {
				return nil
			}
			continue
		}
		app.send(ctx, line)
	}
}

// handleCommand processes a slash command; returns true to quit.
func (a *chatApp) handleCommand(line string) bool {
	switch line {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Println("/session  show the active session card")
		fmt.Println("/pause    pause or resume the session")
		fmt.Println("/end      end the session")
		fmt.Println("/clear    clear the conversation")
		fmt.Println("/quit     exit")
	case "/session":
		fmt.Println(a.render.SessionCard(a.tracker.Snapshot()))
	case "/pause":
		a.tracker.Toggle()
		fmt.Println(a.render.SessionCard(a.tracker.Snapshot()))
	case "/end":
		a.tracker.End()
		fmt.Println(a.render.SessionCard(a.tracker.Snapshot()))
	case "/clear":
		a.log.Clear()
		fmt.Println("conversation cleared")
	default:
		fmt.Println("unknown command; /help lists commands")
	}
	return false
}

func (a *chatApp) send(ctx context.Context, text string) {
	settings := a.currentSettings()
	model := modelID
	if model == "" {
		model = settings.DefaultModel
	}
	opts := provider.Options{ModelID: model}

	pipeline := a.pipeline()

	// Missing credentials block the send before any network I/O.
	if err := pipeline.Preflight(opts); err != nil {
		fmt.Println(a.render.Error(err))
		return
	}

	userMsg := types.Message{
		ID:        uuid.NewString(),
		Role:      types.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
		Mood:      mood.Classify(text),
	}
	history := a.log.All()
	fmt.Println(a.render.User(userMsg))

	reply := pipeline.Generate(ctx, text, history, opts)

	a.log.Append(userMsg)
	a.log.Append(reply)
	if latest, ok := a.log.LatestAssistant(); ok {
		a.tracker.Observe(latest)
	}

	fmt.Println(a.render.Assistant(reply))
	if snap := a.tracker.Snapshot(); snap.Mode == session.ModeRunning {
		fmt.Println(a.render.SessionCard(snap))
	}
}
