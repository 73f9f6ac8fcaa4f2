package controllers

import (
	"context"
	"errors"
	"net/http"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/exceptions"
	"sangha-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DonationController struct {
	Log             *zap.Logger
	DonationUsecase contracts.DonationUsecase
	RequestTimeout  time.Duration
}

func NewDonationController(logger *zap.Logger, donationUsecase contracts.DonationUsecase, requestTimeout time.Duration) *DonationController {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return &DonationController{
		Log:             logger,
		DonationUsecase: donationUsecase,
		RequestTimeout:  requestTimeout,
	}
}

func (ctrl *DonationController) InitializePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DonationController.InitializePayment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("DonationController.InitializePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.InitializePaymentRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("DonationController.InitializePayment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.DonationUsecase.InitializePayment(ctx, request)
	if err != nil {
		ctrl.Log.Error("DonationController.InitializePayment error from usecase",
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

	utils.LogBusinessEvent(ctrl.Log, "payment_initialized", requestID,
		zap.String(constvars.LoggingTransactionIDKey, response.TransactionID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *DonationController) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DonationController.GetPaymentStatus requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	transactionID := chi.URLParam(r, "transactionID")
	if transactionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTransactionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DonationUsecase.GetPaymentStatus(ctx, transactionID)
	if err != nil {
		ctrl.Log.Error("DonationController.GetPaymentStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}
