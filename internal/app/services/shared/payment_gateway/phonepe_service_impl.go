package payment_gateway

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/responses"
	"sangha-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type phonePeService struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewPhonePeService builds the live gateway client. Calls are bounded by
// the configured timeout and throttled client-side so a burst of
// donations cannot trip the gateway's own limits.
func NewPhonePeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	timeout := time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := internalConfig.PaymentGateway.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	return &phonePeService{
		BaseUrl:    internalConfig.PaymentGateway.BaseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		Log:        logger,
	}
}

type phonePePayRequestBody struct {
	Request string `json:"request"`
}

func (s *phonePeService) CreateOrder(ctx context.Context, input *contracts.CreateOrderInput) (*contracts.CreateOrderOutput, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	body, err := json.Marshal(phonePePayRequestBody{Request: input.PayloadBase64})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := s.post(ctx, body, input.Checksum)
	if err != nil {
		// Payment initiation fails closed: a single retry on timeout,
		// then give up rather than hang the donor.
		if !isTimeout(err) {
			return nil, exceptions.ErrSendHTTPRequest(err)
		}
		s.Log.Warn("phonePeService.CreateOrder timed out, retrying once",
			zap.String(constvars.LoggingTransactionIDKey, input.TransactionID),
		)
		resp, err = s.post(ctx, body, input.Checksum)
		if err != nil {
			if isTimeout(err) {
				return nil, exceptions.ErrGatewayTimeout(err)
			}
			return nil, exceptions.ErrSendHTTPRequest(err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrGatewayNon2xx(nil, resp.StatusCode)
	}

	var payResponse responses.PhonePePayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payResponse); err != nil {
		return nil, exceptions.ErrGatewayMalformedResponse(err)
	}

	redirectURL := payResponse.Data.InstrumentResponse.RedirectInfo.URL
	if !payResponse.Success || redirectURL == "" {
		return nil, exceptions.ErrGatewayMissingRedirectURL(errors.New(payResponse.Code))
	}

	return &contracts.CreateOrderOutput{PaymentURL: redirectURL}, nil
}

func (s *phonePeService) post(ctx context.Context, body []byte, checksum string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+constvars.PhonePePayEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.PhonePeVerifyHeader, checksum)

	return s.HTTPClient.Do(req)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
