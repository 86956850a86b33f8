package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель запросов к сервису расчёта начислений.
// По умолчанию не ограничивает, блокируется по Retry-After из ответа 429
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	// blockedUntil - крайний срок снятия блокировки, защищает от раннего
	// снятия при перекрывающихся ответах 429
	blockedUntil time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// BlockFor - останавливает запросы на duration, затем снимает ограничение.
// При перекрывающихся блокировках действует самый поздний срок
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	until := time.Now().Add(duration)

	rl.mu.Lock()
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
	// при нулевом лимите burst всё ещё пропускает запросы, обнуляем и его
	rl.limiter.SetLimit(0)
	rl.limiter.SetBurst(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		// таймер более короткой блокировки не должен снимать более длинную
		if time.Now().Before(rl.blockedUntil) {
			return
		}
		rl.limiter.SetLimit(rate.Inf)
		rl.limiter.SetBurst(1)
	})
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
