package handler

import (
	"errors"
	"net/http"

	"paygate/internal/core"
)

type errorMapping struct {
	target error
	code   int
}

// clientErrors are safe to show to the caller as they are.
var clientErrors = []errorMapping{
	{core.ErrInvalidAddress, http.StatusBadRequest},
	{core.ErrInvalidTxHash, http.StatusBadRequest},
	{core.ErrUnsupportedNetwork, http.StatusBadRequest},
	{core.ErrInvalidSignature, http.StatusUnauthorized},
	{core.ErrChallengeNotFound, http.StatusUnauthorized},
	{core.ErrUnauthorized, http.StatusUnauthorized},
	{core.ErrAdminDisabled, http.StatusForbidden},
	{core.ErrAlreadyUsed, http.StatusConflict},
	{core.ErrDuplicateTransaction, http.StatusConflict},
	{core.ErrTransactionFailed, http.StatusUnprocessableEntity},
	{core.ErrNoTransferEvent, http.StatusUnprocessableEntity},
	{core.ErrSenderMismatch, http.StatusUnprocessableEntity},
	{core.ErrReceiverMismatch, http.StatusUnprocessableEntity},
	{core.ErrInsufficientAmount, http.StatusUnprocessableEntity},
	{core.ErrInsufficientCredits, http.StatusPaymentRequired},
	{core.ErrTransactionNotFound, http.StatusNotFound},
}

// errorResponse maps a core error to a status code and the text shown to the
// caller. Anything unrecognised, transient failures included, gets the
// generic message.
func errorResponse(err error) (int, string) {
	for _, m := range clientErrors {
		if errors.Is(err, m.target) {
			return m.code, m.target.Error()
		}
	}
	if core.IsTransient(err) {
		return http.StatusServiceUnavailable, oopsErr
	}
	return http.StatusInternalServerError, oopsErr
}

// paymentFailureMessage tells the caller whether resubmitting the same
// transaction can ever succeed.
func paymentFailureMessage(err error) string {
	switch {
	case core.IsTerminal(err):
		return "Payment rejected"
	case core.IsTransient(err):
		return "Payment not verified yet, submit it again later"
	}
	return "Payment failed"
}
