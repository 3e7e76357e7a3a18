package scheduler

import (
	"context"
	"fmt"

	"monjoel_backend/internal/email"
	"monjoel_backend/platform/config"
	"monjoel_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	sender    email.Sender
	teamEmail string
	log       *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sender email.Sender, teamEmail string, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:    server,
		mux:       mux,
		sender:    sender,
		teamEmail: teamEmail,
		log:       log,
	}

	mux.HandleFunc(TaskDiagnosticNotification, w.handleDiagnosticNotification)
	mux.HandleFunc(TaskContactNotification, w.handleContactNotification)
	mux.HandleFunc(TaskPartnerNotification, w.handlePartnerNotification)

	return w, nil
}

func (w *Worker) handleDiagnosticNotification(ctx context.Context, task *asynq.Task) error {
	if w.teamEmail == "" {
		return nil
	}

	payload, err := ParseDiagnosticNotificationPayload(task)
	if err != nil {
		return err
	}

	return w.sender.SendDiagnosticTicketEmail(ctx, w.teamEmail, email.DiagnosticTicketData{
		RequestID:    payload.RequestID,
		ProblemType:  payload.ProblemType,
		City:         payload.City,
		Zip:          payload.Zip,
		ContactName:  payload.ContactName,
		ContactPhone: payload.ContactPhone,
		Urgent:       payload.Urgent,
		PriceLabel:   payload.PriceLabel,
		EtaLabel:     payload.EtaLabel,
	})
}

func (w *Worker) handleContactNotification(ctx context.Context, task *asynq.Task) error {
	if w.teamEmail == "" {
		return nil
	}

	payload, err := ParseContactNotificationPayload(task)
	if err != nil {
		return err
	}

	return w.sender.SendContactMessageEmail(ctx, w.teamEmail, payload.Name, payload.Email, payload.Subject)
}

func (w *Worker) handlePartnerNotification(ctx context.Context, task *asynq.Task) error {
	if w.teamEmail == "" {
		return nil
	}

	payload, err := ParsePartnerNotificationPayload(task)
	if err != nil {
		return err
	}

	return w.sender.SendPartnerApplicationEmail(ctx, w.teamEmail, payload.CompanyName, payload.Email)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
