package payload

import "github.com/jellydator/validation"

// PaymentRequest is a transfer the signed-in wallet claims to have made.
type PaymentRequest struct {
	TxHash  string `json:"txHash"`
	Network string `json:"network"`
}

func (p PaymentRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.TxHash,
			validation.Required,
			validation.Match(txHashPattern).Error("must be a 0x-prefixed 32 byte hex hash"),
		),
		validation.Field(&p.Network, validation.Required, networkRule),
	)
}

type AccountQuery struct {
	Address string
}

func (a AccountQuery) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, addressRules...),
	)
}
