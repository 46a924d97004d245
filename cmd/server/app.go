package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/platform/postgres"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
	"github.com/phrazzld/crm-mobile-api/internal/store"
	"github.com/phrazzld/crm-mobile-api/internal/task"
)

// stores groups every persistence dependency the handlers need.
type stores struct {
	staff            store.StaffStore
	tokens           store.TokenStore
	leads            store.LeadStore
	clients          store.ClientStore
	deals            store.DealStore
	stages           store.PipelineStageStore
	proposals        store.ProposalStore
	estimates        store.EstimateStore
	estimateRequests store.EstimateRequestStore
	tasks            store.TaskStore
	meetings         store.MeetingStore
	todos            store.TodoStore
	timesheets       store.TimesheetStore
	notes            store.NoteStore
	comments         store.CommentStore
	reminders        store.ReminderStore
	goals            store.GoalStore
	tickets          store.TicketStore
	chat             store.ChatStore
	emailAccounts    store.EmailAccountStore
	emailSignatures  store.EmailSignatureStore
	emailMessages    store.EmailMessageStore
	options          store.OptionStore
	dashboard        store.DashboardStore
	refs             store.ReferenceChecker
}

// newPostgresStores builds the PostgreSQL implementation of every store.
func newPostgresStores(db *sql.DB, logger *slog.Logger) stores {
	return stores{
		staff:            postgres.NewStaffStore(db, logger),
		tokens:           postgres.NewTokenStore(db, logger),
		leads:            postgres.NewLeadStore(db, logger),
		clients:          postgres.NewClientStore(db, logger),
		deals:            postgres.NewDealStore(db, logger),
		stages:           postgres.NewPipelineStageStore(db, logger),
		proposals:        postgres.NewProposalStore(db, logger),
		estimates:        postgres.NewEstimateStore(db, logger),
		estimateRequests: postgres.NewEstimateRequestStore(db, logger),
		tasks:            postgres.NewTaskStore(db, logger),
		meetings:         postgres.NewMeetingStore(db, logger),
		todos:            postgres.NewTodoStore(db, logger),
		timesheets:       postgres.NewTimesheetStore(db, logger),
		notes:            postgres.NewNoteStore(db, logger),
		comments:         postgres.NewCommentStore(db, logger),
		reminders:        postgres.NewReminderStore(db, logger),
		goals:            postgres.NewGoalStore(db, logger),
		tickets:          postgres.NewTicketStore(db, logger),
		chat:             postgres.NewChatStore(db, logger),
		emailAccounts:    postgres.NewEmailAccountStore(db, logger),
		emailSignatures:  postgres.NewEmailSignatureStore(db, logger),
		emailMessages:    postgres.NewEmailMessageStore(db, logger),
		options:          postgres.NewOptionStore(db),
		dashboard:        postgres.NewDashboardStore(db),
		refs:             postgres.NewReferenceChecker(db),
	}
}

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	stores      stores
	authService *auth.Service
	registry    *prometheus.Registry
	taskRunner  *task.TaskRunner
}

// newApplication wires the services. db may be nil when the stores do not
// need it, in which case the health check skips the database. A nil
// passwords verifier selects bcrypt.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	st stores,
	passwords auth.PasswordVerifier,
) (*application, error) {
	if passwords == nil {
		passwords = auth.NewBcryptVerifier()
	}

	authService, err := auth.NewService(cfg.Auth, st.tokens, st.staff, passwords, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	logger.Info("token service initialized",
		"access_token_lifetime_minutes", cfg.Auth.AccessTokenLifetimeMinutes,
		"refresh_token_lifetime_days", cfg.Auth.RefreshTokenLifetimeDays)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if db != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(db, "crm"))
	}

	runner := task.NewTaskRunner(task.TaskRunnerConfig{
		WorkerCount: cfg.Jobs.Workers,
		QueueSize:   cfg.Jobs.QueueSize,
		TaskTimeout: task.DefaultTaskRunnerConfig().TaskTimeout,
	}, logger, registry)
	runner.Schedule(
		task.NewTokenPruneTask(st.tokens, time.Duration(cfg.Jobs.TokenRetentionDays)*24*time.Hour, logger),
		time.Duration(cfg.Jobs.TokenPruneIntervalMinutes)*time.Minute,
	)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		stores:      st,
		authService: authService,
		registry:    registry,
		taskRunner:  runner,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	app.taskRunner.Start()
	defer app.taskRunner.Stop()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup closes the database connection.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
