package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/services/shared/ratelimiter"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/dto/responses"
	"sangha-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeContactUsecase struct {
	response    *responses.SendEmailResponse
	err         error
	lastRequest *requests.SendEmailRequest
}

func (f *fakeContactUsecase) SendEmail(ctx context.Context, request *requests.SendEmailRequest) (*responses.SendEmailResponse, error) {
	f.lastRequest = request
	return f.response, f.err
}

type countingRedis struct {
	count int
}

func (f *countingRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *countingRedis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (f *countingRedis) Delete(ctx context.Context, key string) error { return nil }
func (f *countingRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	f.count++
	return f.count, nil
}

func TestContactControllerSendEmail(t *testing.T) {
	t.Run("Success wire format", func(t *testing.T) {
		usecase := &fakeContactUsecase{
			response: &responses.SendEmailResponse{Success: true, Message: constvars.EmailSentSuccessfully},
		}
		ctrl := NewContactController(zap.NewNop(), usecase, nil, 30*time.Second)

		req := withRequestID(httptest.NewRequest("POST", "/api/send-email",
			strings.NewReader(`{"name":"Ravi","email":"ravi@example.org","message":"Hello"}`)))
		rr := httptest.NewRecorder()
		ctrl.SendEmail(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, constvars.EmailSentSuccessfully, body["message"])
	})

	t.Run("Validation failure yields 400 with required-fields message", func(t *testing.T) {
		usecase := &fakeContactUsecase{err: exceptions.ErrMissingRequiredContactFields(nil)}
		ctrl := NewContactController(zap.NewNop(), usecase, nil, 30*time.Second)

		req := withRequestID(httptest.NewRequest("POST", "/api/send-email",
			strings.NewReader(`{"name":"Ravi"}`)))
		rr := httptest.NewRecorder()
		ctrl.SendEmail(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientContactFieldsRequired, body["error"])
	})

	t.Run("Provider failure yields generic 500", func(t *testing.T) {
		usecase := &fakeContactUsecase{
			err: exceptions.ErrSMTPSendEmail(assertableErr("550 relay denied"), "smtp.example.org"),
		}
		ctrl := NewContactController(zap.NewNop(), usecase, nil, 30*time.Second)

		req := withRequestID(httptest.NewRequest("POST", "/api/send-email",
			strings.NewReader(`{"name":"Ravi","email":"ravi@example.org","message":"Hello"}`)))
		rr := httptest.NewRecorder()
		ctrl.SendEmail(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientEmailSendFailed, body["error"])
		assert.NotContains(t, rr.Body.String(), "550")
		assert.NotContains(t, rr.Body.String(), "smtp.example.org")
	})

	t.Run("Rate limit kicks in with Retry-After", func(t *testing.T) {
		usecase := &fakeContactUsecase{
			response: &responses.SendEmailResponse{Success: true, Message: constvars.EmailSentSuccessfully},
		}
		limiter := ratelimiter.NewContactLimiter(&countingRedis{}, zap.NewNop(), 60, 2)
		ctrl := NewContactController(zap.NewNop(), usecase, limiter, 30*time.Second)

		var lastCode int
		var rr *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			req := withRequestID(httptest.NewRequest("POST", "/api/send-email",
				strings.NewReader(`{"name":"Ravi","email":"ravi@example.org","message":"Hello"}`)))
			rr = httptest.NewRecorder()
			ctrl.SendEmail(rr, req)
			lastCode = rr.Code
		}

		assert.Equal(t, constvars.StatusTooManyRequests, lastCode)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Malformed JSON yields 400", func(t *testing.T) {
		ctrl := NewContactController(zap.NewNop(), &fakeContactUsecase{}, nil, 30*time.Second)

		req := withRequestID(httptest.NewRequest("POST", "/api/send-email",
			strings.NewReader(`{broken`)))
		rr := httptest.NewRecorder()
		ctrl.SendEmail(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }

var _ contracts.ContactUsecase = (*fakeContactUsecase)(nil)
var _ contracts.RedisRepository = (*countingRedis)(nil)
