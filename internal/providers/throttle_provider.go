package providers

import (
	"encoding/binary"
	"guildpreview/internal/structures"
	"sync"
	"time"
	"unsafe"

	"github.com/coocood/freecache"
)

// ThrottleProviderInterface answers whether a client may make another
// request in its current window.
type ThrottleProviderInterface interface {
	Allow(client string) bool
}

// ThrottleProvider keeps one fixed-window counter per client in freecache.
// The cache size caps memory; evicted clients simply start a new window.
type ThrottleProvider struct {
	mu       sync.Mutex
	cache    *freecache.Cache
	requests uint32
	window   int
	now      func() time.Time
}

func NewThrottleProvider(conf *structures.Config, logger Logger) ThrottleProviderInterface {
	if !conf.Throttle.Enabled || conf.Throttle.Size <= 0 || conf.Throttle.Requests <= 0 {
		logger.Infof(TypeApp, "Throttle disabled")
		return &noopThrottle{}
	}

	window := max(int(conf.Throttle.Window.Seconds()), 1)
	logger.Infof(TypeApp, "Throttle initialized: %d requests per %ds, %dMB", conf.Throttle.Requests, window, conf.Throttle.Size)

	return &ThrottleProvider{
		cache:    freecache.NewCache(conf.Throttle.Size * 1024 * 1024),
		requests: uint32(conf.Throttle.Requests),
		window:   window,
		now:      time.Now,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read; freecache copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (tp *ThrottleProvider) Allow(client string) bool {
	key := unsafeStringToBytes(client)

	tp.mu.Lock()
	defer tp.mu.Unlock()

	val, expireAt, err := tp.cache.GetWithExpiration(key)
	if err != nil || len(val) != 4 {
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, 1)
		_ = tp.cache.Set(key, buf, tp.window)
		return true
	}

	count := binary.BigEndian.Uint32(val)
	if count >= tp.requests {
		return false
	}

	ttl := int(int64(expireAt) - tp.now().Unix())
	if ttl <= 0 {
		ttl = 1
	}
	binary.BigEndian.PutUint32(val, count+1)
	_ = tp.cache.Set(key, val, ttl)
	return true
}

// MetricsThrottleProvider counts rejected requests.
type MetricsThrottleProvider struct {
	inner   ThrottleProviderInterface
	metrics MetricsProviderInterface
}

func (t *MetricsThrottleProvider) Allow(client string) bool {
	ok := t.inner.Allow(client)
	if !ok {
		t.metrics.IncThrottled()
	}
	return ok
}

// NewInstrumentedThrottleProvider creates a throttle wrapped with metrics
// instrumentation. A disabled throttle is returned bare since it never
// rejects.
func NewInstrumentedThrottleProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) ThrottleProviderInterface {
	inner := NewThrottleProvider(conf, logger)
	if _, disabled := inner.(*noopThrottle); disabled {
		return inner
	}
	return &MetricsThrottleProvider{
		inner:   inner,
		metrics: metrics,
	}
}

type noopThrottle struct{}

func (n *noopThrottle) Allow(_ string) bool { return true }
