package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher 메시지 발행 인터페이스
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// RedisClient Redis 클라이언트 인터페이스
type RedisClient interface {
	Publisher
	Subscribe(ctx context.Context, channel string) (<-chan Message, error)
	Close() error
}

// Message 메시지 구조체
type Message struct {
	Channel string
	Payload []byte
	Time    time.Time
}

// Decode 메시지 페이로드를 JSON으로 역직렬화합니다
func (m Message) Decode(v interface{}) error {
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("메시지 역직렬화 실패: %w", err)
	}
	return nil
}

// redisClient Redis 클라이언트 구현체
type redisClient struct {
	client *redis.Client
}

// Options Redis 연결 설정
type Options struct {
	Addr     string
	Password string
	DB       int
	// ConnectTimeout 시작 시 연결 재시도 최대 시간. 0이면 한 번만 시도합니다
	ConnectTimeout time.Duration
}

// ConnectRedis 핑이 성공할 때까지 지수 백오프로 재시도하며 Redis에 연결합니다
func ConnectRedis(ctx context.Context, opts Options, logger *zap.Logger) (RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = opts.ConnectTimeout

	var policy backoff.BackOff = backoff.WithContext(bo, ctx)
	if opts.ConnectTimeout <= 0 {
		policy = backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Redis 연결 재시도", zap.String("addr", opts.Addr), zap.Error(err), zap.Duration("wait", wait))
	}
	if err := backoff.RetryNotify(ping, policy, notify); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return &redisClient{client: client}, nil
}

// WrapRedisClient 이미 연결된 go-redis 클라이언트를 감쌉니다
func WrapRedisClient(client *redis.Client) RedisClient {
	return &redisClient{client: client}
}

// Publish 메시지 발행
func (r *redisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %w", err)
	}

	return r.client.Publish(ctx, channel, payload).Err()
}

// Subscribe 채널 구독. ctx가 취소되면 반환된 채널이 닫힙니다
func (r *redisClient) Subscribe(ctx context.Context, channel string) (<-chan Message, error) {
	pubsub := r.client.Subscribe(ctx, channel)

	// 구독 확인
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("채널 구독 실패: %w", err)
	}

	messageCh := make(chan Message)
	go func() {
		defer close(messageCh)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case messageCh <- Message{
					Channel: msg.Channel,
					Payload: []byte(msg.Payload),
					Time:    time.Now(),
				}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return messageCh, nil
}

// Close Redis 클라이언트 종료
func (r *redisClient) Close() error {
	return r.client.Close()
}
