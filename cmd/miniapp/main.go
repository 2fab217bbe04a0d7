package main

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/larriantoniy/sms_miniapp/internal/adapters/api"
	"github.com/larriantoniy/sms_miniapp/internal/adapters/view"
	"github.com/larriantoniy/sms_miniapp/internal/config"
	"github.com/larriantoniy/sms_miniapp/internal/domain"
	"github.com/larriantoniy/sms_miniapp/internal/usecases"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := setupLogger(cfg.Env)
	term := view.NewTerminal(os.Stdout, logger)

	// сессия приходит только из ссылки запуска; без неё делать нечего
	session, err := domain.ParseLaunchURL(cfg.LaunchURL)
	if err != nil {
		term.Fatal(usecases.MsgNoSession)
		logger.Error("no session in launch url", "error", err)
		return
	}

	billing := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	ctrl := usecases.New(logger, billing, term, session)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	ctrl.Init(ctx)
	go ctrl.AutoRefresh(ctx, cfg.RefreshInterval)

	runPrompt(ctx, ctrl, logger)
	logger.Info("exit")
}

// runPrompt читает команды со стандартного ввода и дёргает контроллер.
func runPrompt(ctx context.Context, ctrl *usecases.Controller, logger *slog.Logger) {
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
			switch cmd {
			case "":
			case "dashboard":
				ctrl.SwitchTab(ctx, domain.TabDashboard)
			case "sms":
				ctrl.SwitchTab(ctx, domain.TabSms)
			case "deposit":
				ctrl.SwitchTab(ctx, domain.TabDeposit)
			case "numbers":
				ctrl.SetSmsNumbers(arg)
			case "text":
				ctrl.SetSmsMessage(arg)
			case "send":
				ctrl.SubmitSms(ctx)
			case "currency":
				ctrl.SetDepositCurrency(ctx, arg)
			case "amount":
				ctrl.SetDepositAmount(arg)
			case "hash":
				ctrl.SetDepositTxHash(arg)
			case "pay":
				ctrl.SubmitDeposit(ctx)
			case "refresh":
				ctrl.RefreshSnapshot(ctx)
			case "quit", "exit":
				return
			default:
				logger.Warn("unknown command", "cmd", cmd)
			}
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return logger
}
