package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"paygate/internal/core"
	"paygate/internal/http/handler/middleware"
	"paygate/internal/http/payload"

	"go.uber.org/zap"
)

type PaygateHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
	usage            UsageService
	payments         PaymentService
	admin            AdminAuthorizer
}

func NewPaygateHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, auth AuthService, usage UsageService, payments PaymentService, admin AdminAuthorizer) *PaygateHandler {
	return &PaygateHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		usage:            usage,
		payments:         payments,
		admin:            admin,
	}
}

func (h *PaygateHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.ChallengeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not create challenge", err, Challenge, requestId)
		return
	}

	challenge, err := h.auth.Challenge(r.Context(), req.Address)
	if err != nil {
		h.fail(w, "Could not create challenge", err, Challenge, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Sign the message with your wallet",
		Data:    challenge,
	}, http.StatusOK, requestId)
}

func (h *PaygateHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Login failed", err, Login, requestId)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Address, req.Nonce, req.Signature)
	if err != nil {
		h.fail(w, "Login failed", err, Login, requestId)
		return
	}

	h.logs.Infow("wallet logged in",
		"address", req.Address,
		"handler", Login,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Logged in",
		Data:    map[string]string{"token": token},
	}, http.StatusOK, requestId)
}

func (h *PaygateHandler) HandleGetUsage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	address, ok := h.authenticate(w, r, GetUsage, requestId)
	if !ok {
		return
	}

	decision, err := h.usage.CheckUsage(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not read usage", err, GetUsage, requestId)
		return
	}

	message := "Usage available"
	if decision.NeedsPayment {
		message = "Payment required"
	}
	h.respond(w, Response{
		Message: message,
		Data:    decision,
	}, http.StatusOK, requestId)
}

func (h *PaygateHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	address, ok := h.authenticate(w, r, GetAccount, requestId)
	if !ok {
		return
	}

	balance, err := h.usage.Balance(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not read account", err, GetAccount, requestId)
		return
	}

	h.respond(w, Response{Data: balance}, http.StatusOK, requestId)
}

func (h *PaygateHandler) HandleConsumeUsage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	address, ok := h.authenticate(w, r, ConsumeUsage, requestId)
	if !ok {
		return
	}

	result, err := h.usage.Consume(r.Context(), address)
	if errors.Is(err, core.ErrInsufficientCredits) {
		h.respondError(w, Response{
			Message: "Payment required",
			Data:    result.Usage,
		}, err, ConsumeUsage, requestId)
		return
	}
	if err != nil {
		h.fail(w, "Could not record usage", err, ConsumeUsage, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Usage recorded",
		Data:    result,
	}, http.StatusOK, requestId)
}

func (h *PaygateHandler) HandleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	address, ok := h.authenticate(w, r, SubmitPayment, requestId)
	if !ok {
		return
	}

	var req payload.PaymentRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Payment rejected", err, SubmitPayment, requestId)
		return
	}

	h.logs.Infow("payment submitted",
		"address", address,
		"tx_hash", req.TxHash,
		"network", req.Network,
		"handler", SubmitPayment,
		"request_id", requestId)

	result, err := h.payments.SubmitPayment(r.Context(), address, req.TxHash, req.Network)
	if err != nil {
		h.fail(w, paymentFailureMessage(err), err, SubmitPayment, requestId)
		return
	}

	h.respond(w, Response{
		Message: fmt.Sprintf("%d credits added", result.CreditsAdded),
		Data:    result,
	}, http.StatusCreated, requestId)
}

func (h *PaygateHandler) HandleGetPayments(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	address, ok := h.authenticate(w, r, GetPayments, requestId)
	if !ok {
		return
	}

	h.listPayments(w, r, address, GetPayments, requestId)
}

func (h *PaygateHandler) HandleAdminPayments(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	if err := h.admin.Authorize(r.Header.Get(adminKeyHeader)); err != nil {
		h.fail(w, "Access denied", err, AdminPayments, requestId)
		return
	}

	query := payload.AccountQuery{Address: r.URL.Query().Get("address")}
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, AdminPayments, requestId)
		return
	}

	h.listPayments(w, r, query.Address, AdminPayments, requestId)
}

func (h *PaygateHandler) listPayments(w http.ResponseWriter, r *http.Request, address, route, requestId string) {
	records, err := h.payments.History(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not list payments", err, route, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string][]core.PaymentRecord{"payments": records},
	}, http.StatusOK, requestId)
}

// authenticate resolves the AUTH_TOKEN header to a wallet address and writes
// the 401 itself when that fails.
func (h *PaygateHandler) authenticate(w http.ResponseWriter, r *http.Request, route, requestId string) (string, bool) {
	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return "", false
	}

	address, err := h.auth.Authenticate(authToken)
	if err != nil {
		h.fail(w, "Authentication failed", err, route, requestId)
		return "", false
	}
	return address, true
}

func (h *PaygateHandler) badRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *PaygateHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respondError(w, Response{Message: message}, err, route, requestId)
}

func (h *PaygateHandler) respondError(w http.ResponseWriter, resp Response, err error, route, requestId string) {
	code, text := errorResponse(err)
	resp.Error = text
	h.respond(w, resp, code, requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}
	h.logs.Infow("request rejected",
		"reason", err,
		"handler", route,
		"request_id", requestId)
}

func (h *PaygateHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
