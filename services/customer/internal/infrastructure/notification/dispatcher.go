package notification

import (
	"context"
	"sync"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/messaging"
	"go.uber.org/zap"
)

// Config 디스패처 설정
type Config struct {
	Channel        string
	QueueSize      int
	Workers        int
	PublishTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Channel == "" {
		c.Channel = contracts.DefaultEmailChannel
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 100
	}
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.PublishTimeout <= 0 {
		c.PublishTimeout = 30 * time.Second
	}
	return c
}

// Dispatcher 이메일 작업을 큐에 쌓고 백그라운드 워커가 Redis 채널로 발행합니다.
// 호출자는 발행 결과를 기다리지 않습니다
type Dispatcher struct {
	publisher messaging.Publisher
	config    Config
	logger    *zap.Logger

	jobs    chan contracts.EmailJob
	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher 이메일 디스패처 생성. Start를 호출해야 발행이 시작됩니다
func NewDispatcher(publisher messaging.Publisher, config Config, logger *zap.Logger) *Dispatcher {
	config = config.withDefaults()
	return &Dispatcher{
		publisher: publisher,
		config:    config,
		logger:    logger,
		jobs:      make(chan contracts.EmailJob, config.QueueSize),
	}
}

// Start 워커 시작
func (d *Dispatcher) Start() {
	for i := 0; i < d.config.Workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	d.logger.Info("이메일 디스패처 시작",
		zap.String("channel", d.config.Channel),
		zap.Int("workers", d.config.Workers),
		zap.Int("queue_size", d.config.QueueSize),
	)
}

// Stop 새 작업을 받지 않고 큐에 남은 작업을 처리한 뒤 종료합니다
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendRegistrationEmail 가입 인증 메일
func (d *Dispatcher) SendRegistrationEmail(email, firstName, link string) {
	d.enqueue(contracts.EmailJob{Kind: contracts.EmailKindRegistration, Email: email, FirstName: firstName, Link: link})
}

// SendWelcomeEmail 환영 메일
func (d *Dispatcher) SendWelcomeEmail(email, firstName string) {
	d.enqueue(contracts.EmailJob{Kind: contracts.EmailKindWelcome, Email: email, FirstName: firstName})
}

// SendPasswordResetEmail 비밀번호 재설정 메일
func (d *Dispatcher) SendPasswordResetEmail(email, firstName, link string) {
	d.enqueue(contracts.EmailJob{Kind: contracts.EmailKindPasswordReset, Email: email, FirstName: firstName, Link: link})
}

func (d *Dispatcher) enqueue(job contracts.EmailJob) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Warn("종료된 디스패처에 이메일 작업 요청", zap.String("kind", string(job.Kind)), zap.String("email", job.Email))
		return
	}

	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("이메일 큐가 가득 차 작업을 버립니다",
			zap.String("kind", string(job.Kind)),
			zap.String("email", job.Email),
		)
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.publish(job)
	}
}

func (d *Dispatcher) publish(job contracts.EmailJob) {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.PublishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, d.config.Channel, job); err != nil {
		d.logger.Error("이메일 작업 발행 실패",
			zap.String("kind", string(job.Kind)),
			zap.String("email", job.Email),
			zap.Error(err),
		)
		return
	}
	d.logger.Debug("이메일 작업 발행", zap.String("kind", string(job.Kind)), zap.String("email", job.Email))
}
