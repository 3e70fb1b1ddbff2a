package mail

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/repository"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPSender gomail 기반 이메일 발송 클라이언트
type SMTPSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger *zap.Logger
}

// NewSMTPSender SMTP 발송 클라이언트 생성
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) repository.MailSender {
	return &SMTPSender{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// Send 이메일 발송
func (s *SMTPSender) Send(ctx context.Context, email *entity.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.From, s.config.FromName))
	if email.ToName != "" {
		m.SetHeader("To", m.FormatAddress(email.To, email.ToName))
	} else {
		m.SetHeader("To", email.To)
	}
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("이메일 발송 실패",
			zap.String("to", email.To),
			zap.String("subject", email.Subject),
			zap.Error(err),
		)
		return fmt.Errorf("이메일 발송 실패: %w", err)
	}

	s.logger.Info("이메일 발송 성공",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("kind", string(email.Kind)),
	)
	return nil
}
