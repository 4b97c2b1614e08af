package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SemenBogdanov/remindbot2/internal/config"
	"github.com/SemenBogdanov/remindbot2/internal/domain"
	"github.com/SemenBogdanov/remindbot2/internal/reminder"
	"github.com/SemenBogdanov/remindbot2/internal/scheduler"
	"github.com/SemenBogdanov/remindbot2/internal/store"
	"github.com/SemenBogdanov/remindbot2/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	repo    store.Repo
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting remindbot",
		zap.Strings("notify_times", a.cfg.NotifyTimes),
		zap.String("http", a.cfg.HTTPAddr),
	)

	// Fire times are static configuration; a bad list is fatal at startup.
	targets, err := scheduler.ParseTargets(a.cfg.NotifyTimes)
	if err != nil {
		a.log.Error("parse notify times failed", zap.Error(err))
		return err
	}

	windows := domain.DefaultWindows()
	repo, err := store.OpenPostgres(ctx, a.cfg.DatabaseURL, a.cfg.Departments, windows.VacationWindowDays)
	if err != nil {
		a.log.Error("open postgres failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("postgres ready")

	clock := domain.RealClock{}
	sender := telegram.NewSender(a.bot)
	svc := reminder.NewService(a.log, a.repo, sender, clock, nil)
	a.router = telegram.NewRouter(a.log, sender, svc, a.cfg.AdminChatID)

	a.router.Greet()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(a.log, clock, targets, []scheduler.Job{
		{Name: "birthday table", Run: func(ctx context.Context) error {
			return svc.SendBirthdayTable(ctx, a.cfg.ChatID)
		}},
		{Name: "upcoming birthdays", Run: func(ctx context.Context) error {
			return svc.SendUpcomingBirthdays(ctx, a.cfg.ChatID)
		}},
	})
	go sched.Run(ctx)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			// Create a short-lived shutdown context and cancel it immediately after use.
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.repo != nil {
				a.repo.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
