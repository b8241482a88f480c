package handler

var (
	Challenge     = "POST /paygate/auth/challenge"
	Login         = "POST /paygate/auth/login"
	GetUsage      = "GET /paygate/usage"
	GetAccount    = "GET /paygate/account"
	ConsumeUsage  = "POST /paygate/usage/consume"
	SubmitPayment = "POST /paygate/payments"
	GetPayments   = "GET /paygate/payments"
	AdminPayments = "GET /paygate/admin/payments"
	Health        = "GET /healthz"
)

const (
	authTokenHeader = "AUTH_TOKEN"
	adminKeyHeader  = "X-Admin-Key"
)
