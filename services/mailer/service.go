package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"medinatours/utils"
)

// Sender is the outbound mail capability consumed by the newsletter and
// payment services.
type Sender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

const (
	queueKey   = "mailQueue"
	maxTries   = 3
	popTimeout = 5 * time.Second
)

// Job is one queued delivery.
type Job struct {
	ID      string    `json:"id"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues mail jobs on a redis list and delivers them over SMTP from a
// background worker, so delivery never blocks the request path.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string

	deliver func(Job) error
}

// New constructs a mail Service with its own redis client.
func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr, redisPassword string, redisDB int) *Service {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	}), fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass)
}

// NewWithClient constructs a mail Service over an existing redis client.
func NewWithClient(client *redis.Client, fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass string) *Service {
	s := &Service{
		redis:    client,
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
	s.deliver = s.deliverSMTP
	return s
}

// Send enqueues one delivery job.
func (s *Service) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	job := Job{
		ID:      uuid.New().String(),
		To:      to,
		Subject: subject,
		Body:    htmlBody,
		Created: time.Now(),
	}
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}
	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue mail job: %w", err)
	}
	return nil
}

// StartWorker drains the queue until ctx is cancelled. Failed deliveries are
// requeued up to maxTries, then dropped with a log line.
func (s *Service) StartWorker(ctx context.Context) {
	logger := utils.GetLogger()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			res, err := s.redis.BRPop(ctx, popTimeout, queueKey).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("mail queue pop failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(res) < 2 {
				continue
			}

			var job Job
			if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
				logger.Warn("dropping unreadable mail job", zap.Error(err))
				continue
			}

			if err := s.deliver(job); err != nil {
				job.Tries++
				if job.Tries >= maxTries {
					logger.Error("dropping mail job after retries",
						zap.String("id", job.ID), zap.Error(err))
					continue
				}
				logger.Warn("mail delivery failed, requeueing",
					zap.String("id", job.ID), zap.Int("tries", job.Tries), zap.Error(err))
				if data, mErr := json.Marshal(job); mErr == nil {
					s.redis.LPush(ctx, queueKey, data)
				}
			}
		}
	}()
}

func (s *Service) deliverSMTP(job Job) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %q <%s>", s.fromName, s.from),
		"To: " + strings.Join(job.To, ","),
		"Subject: " + job.Subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		job.Body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	return smtp.SendMail(s.smtpHost+":"+s.smtpPort, auth, s.from, job.To, []byte(msg))
}
