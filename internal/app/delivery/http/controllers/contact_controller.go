package controllers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/services/shared/ratelimiter"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/exceptions"
	"sangha-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	Log            *zap.Logger
	ContactUsecase contracts.ContactUsecase
	Limiter        *ratelimiter.ContactLimiter
	RequestTimeout time.Duration
}

func NewContactController(logger *zap.Logger, contactUsecase contracts.ContactUsecase, limiter *ratelimiter.ContactLimiter, requestTimeout time.Duration) *ContactController {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return &ContactController{
		Log:            logger,
		ContactUsecase: contactUsecase,
		Limiter:        limiter,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *ContactController) SendEmail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ContactController.SendEmail requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ContactController.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if ctrl.Limiter != nil {
		allowed, retryAfter, _ := ctrl.Limiter.Allow(r.Context(), clientIP(r))
		if !allowed {
			utils.LogSecurityEvent(ctrl.Log, "contact_rate_limited", requestID, "warning",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTooManyContactRequests(nil))
			return
		}
	}

	request := new(requests.SendEmailRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ContactController.SendEmail error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ContactUsecase.SendEmail(ctx, request)
	if err != nil {
		ctrl.Log.Error("ContactController.SendEmail error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "contact_email_sent", requestID,
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
