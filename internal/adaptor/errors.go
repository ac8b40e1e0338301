package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Not-found
// sentinels become 404, policy and state violations become 400, everything
// else is a 500 with the detail kept out of the response body.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound),
		errors.Is(err, usecase.ErrRoomTypeNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrPaymentMethodNotFound),
		errors.Is(err, usecase.ErrNoRoomsAvailable):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrRoomUnavailable),
		errors.Is(err, usecase.ErrInvalidStay),
		errors.Is(err, usecase.ErrCouponNotFound),
		errors.Is(err, usecase.ErrCouponExpired),
		errors.Is(err, usecase.ErrCouponMinPurchase),
		errors.Is(err, usecase.ErrCouponUsageLimit),
		errors.Is(err, usecase.ErrCancellationWindowExpired),
		errors.Is(err, usecase.ErrUpdateWindowExpired),
		errors.Is(err, usecase.ErrBookingNotCancellable),
		errors.Is(err, usecase.ErrBookingNotUpdatable),
		errors.Is(err, usecase.ErrBookingNotPayable),
		errors.Is(err, usecase.ErrBookingNotConfirmed),
		errors.Is(err, usecase.ErrInsufficientAdvancePayment):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
