package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mottufind/internal/pkg/cache"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/middleware"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return m.Called(ctx, key, expiration).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func serveLimited(c cache.Client) *httptest.ResponseRecorder {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := middleware.RateLimiter(c, 3, time.Minute, logger.Nop{})(ok)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/moto", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_FirstRequestOpensWindow(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(1), nil)
	c.On("Expire", mock.Anything, "rate-limit:10.0.0.1", time.Minute).Return(nil)

	rec := serveLimited(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Remaining"))
	c.AssertExpectations(t)
}

func TestRateLimiter_ExpiredKeyRecreatedByIncrGetsTTL(t *testing.T) {
	c := new(MockCache)
	// A janela anterior expirou: o INCR recria a chave e o limiter precisa devolver o TTL.
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(2), nil).Once()
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(1), nil).Once()
	c.On("Expire", mock.Anything, "rate-limit:10.0.0.1", time.Minute).Return(nil).Once()

	assert.Equal(t, http.StatusOK, serveLimited(c).Code)
	assert.Equal(t, http.StatusOK, serveLimited(c).Code)

	c.AssertExpectations(t)
	c.AssertNumberOfCalls(t, "Expire", 1)
}

func TestRateLimiter_UnderLimitKeepsWindow(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(3), nil)

	rec := serveLimited(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	c.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestRateLimiter_OverLimit(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(4), nil)

	rec := serveLimited(c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_FailsOpenWhenCacheDown(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, "rate-limit:10.0.0.1").Return(int64(0), errors.New("connection refused"))

	rec := serveLimited(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
