package cache

import (
	"context"
	"sync"
	"time"

	"packing/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultShipmentKeyPrefix = "shipments:"
	DefaultShipmentChannel   = "shipments:invalidate"

	scanBatchSize            = 100
	defaultInvalidateTimeout = 2 * time.Second
)

var _ ports.CacheInvalidator = (*RedisShipmentInvalidator)(nil)

// RedisShipmentInvalidator drops the shipment subsystem's cached keys and
// announces the invalidation on a pub/sub channel. The Redis work runs on a
// background worker; Invalidate only schedules it.
type RedisShipmentInvalidator struct {
	client    redis.UniversalClient
	keyPrefix string
	channel   string
	timeout   time.Duration
	logger    *zap.Logger

	pending   chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

type RedisShipmentInvalidatorOption func(*RedisShipmentInvalidator)

func WithKeyPrefix(prefix string) RedisShipmentInvalidatorOption {
	return func(i *RedisShipmentInvalidator) {
		if prefix != "" {
			i.keyPrefix = prefix
		}
	}
}

func WithChannel(channel string) RedisShipmentInvalidatorOption {
	return func(i *RedisShipmentInvalidator) {
		if channel != "" {
			i.channel = channel
		}
	}
}

func WithInvalidateTimeout(timeout time.Duration) RedisShipmentInvalidatorOption {
	return func(i *RedisShipmentInvalidator) {
		if timeout > 0 {
			i.timeout = timeout
		}
	}
}

func WithInvalidatorLogger(logger *zap.Logger) RedisShipmentInvalidatorOption {
	return func(i *RedisShipmentInvalidator) {
		i.logger = logger
	}
}

// NewRedisShipmentInvalidator uses an existing client and starts the
// background worker. The caller keeps ownership of the client and must call
// Close before closing it.
func NewRedisShipmentInvalidator(client redis.UniversalClient, opts ...RedisShipmentInvalidatorOption) *RedisShipmentInvalidator {
	i := &RedisShipmentInvalidator{
		client:    client,
		keyPrefix: DefaultShipmentKeyPrefix,
		channel:   DefaultShipmentChannel,
		timeout:   defaultInvalidateTimeout,
		logger:    zap.NewNop(),
		pending:   make(chan struct{}, 1),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	go i.run()
	return i
}

// Invalidate schedules an invalidation and returns without waiting for Redis.
// Requests made while one is already pending are merged into it.
func (i *RedisShipmentInvalidator) Invalidate(context.Context) {
	select {
	case i.pending <- struct{}{}:
	default:
	}
}

// Close runs a pending invalidation, if any, and stops the worker.
func (i *RedisShipmentInvalidator) Close() {
	i.closeOnce.Do(func() { close(i.done) })
	<-i.stopped
}

func (i *RedisShipmentInvalidator) run() {
	defer close(i.stopped)
	for {
		select {
		case <-i.pending:
			i.invalidate()
		case <-i.done:
			select {
			case <-i.pending:
				i.invalidate()
			default:
			}
			return
		}
	}
}

// invalidate deletes every key under the prefix and publishes the prefix on
// the channel. Failures are logged.
func (i *RedisShipmentInvalidator) invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()

	deleted, err := i.deleteKeys(ctx)
	if err != nil {
		i.logger.Warn("failed to delete shipment cache keys",
			zap.String("prefix", i.keyPrefix), zap.Error(err))
	}

	if err := i.client.Publish(ctx, i.channel, i.keyPrefix).Err(); err != nil {
		i.logger.Warn("failed to publish shipment cache invalidation",
			zap.String("channel", i.channel), zap.Error(err))
		return
	}

	i.logger.Debug("invalidated shipment cache",
		zap.String("prefix", i.keyPrefix), zap.Int64("deleted", deleted))
}

func (i *RedisShipmentInvalidator) deleteKeys(ctx context.Context) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := i.client.Scan(ctx, cursor, i.keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := i.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
