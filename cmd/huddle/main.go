package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"huddle/auth"
	"huddle/infrastructure/httpapi"
	"huddle/infrastructure/pubsub"
	"huddle/internal"
	"huddle/repositories"
	"huddle/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "huddle terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern keeps 'defer' cleanup (badger close, NATS drain) running on every exit path
// and decouples initialization from the process entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	level, err := internal.SlogLevel(config.LogLevel)
	if err != nil {
		return exitConfig, err
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	auth.SetSigningKey(config.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("badger open: %w", err)
	}
	defer db.Close()

	// 3. NATS connection for pub/sub, analytics and email queueing
	nc, err := nats.Connect(
		config.NATSURL,
		nats.DrainTimeout(config.DrainTimeout),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				log.With("error", err, "subject", s.Subject).Error("async NATS error")
				return
			}
			log.With("error", err).Error("async NATS error outside subscription")
		}),
	)
	if err != nil {
		return exitRuntime, fmt.Errorf("nats connect: %w", err)
	}
	defer func() {
		if !nc.IsClosed() && !nc.IsDraining() {
			log.Info("draining NATS connection")
			if err := nc.Drain(); err != nil {
				log.With("error", err).Error("error draining NATS connection")
			}
		}
	}()

	// 4. Repositories
	meetings := repositories.NewMeetingRepository(db, log)
	agenda := repositories.NewAgendaItemRepository(db, log)
	projects := repositories.NewProjectRepository(db, log)
	teams := repositories.NewTeamRepository(db, log)
	members := repositories.NewTeamMemberRepository(db, log)

	// 5. Services
	finalizer := services.NewMeetingFinalizer(log, meetings, agenda, projects, teams, members,
		services.Collaborators{
			Sorter:    services.NewSortOrderService(),
			Archiver:  services.NewArchiveService(log, projects),
			Analytics: services.NewSegmentAnalytics(nc, log),
			Chat:      services.NewSlackNotifier(config.SlackWebhookURL, log),
			Mailer:    services.NewEmailSummaryService(nc, log),
			Publisher: pubsub.NewNATSPublisher(nc, log),
		})

	// 6. HTTP API
	mux := http.NewServeMux()
	mux.Handle("/mutations/endMeeting", httpapi.NewEndMeetingHandler(finalizer, log))
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "OK")
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if !nc.IsConnected() || nc.IsDraining() {
			http.Error(w, "NATS connection not ready", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "OK")
	})

	server := &http.Server{
		Addr:              net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("addr", server.Addr).Info("huddle listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return exitRuntime, fmt.Errorf("http listener: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("http shutdown: %w", err)
	}
	return exitOK, nil
}
