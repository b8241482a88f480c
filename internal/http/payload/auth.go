package payload

import "github.com/jellydator/validation"

type ChallengeRequest struct {
	Address string `json:"address"`
}

func (c ChallengeRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, addressRules...),
	)
}

type LoginRequest struct {
	Address   string `json:"address"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Address, addressRules...),
		validation.Field(&l.Nonce,
			validation.Required,
			validation.Match(noncePattern).Error("must be the nonce of a login challenge"),
		),
		validation.Field(&l.Signature,
			validation.Required,
			validation.Match(signaturePattern).Error("must be a 0x-prefixed 65 byte hex signature"),
		),
	)
}
