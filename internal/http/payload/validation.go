package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressPattern   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashPattern    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	signaturePattern = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
	noncePattern     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

var addressRules = []validation.Rule{
	validation.Required,
	validation.Match(addressPattern).Error("must be a 0x-prefixed 20 byte hex address"),
}

var networkRule = validation.In("base", "base-sepolia", "mainnet", "testnet").Error("must be base, base-sepolia, mainnet or testnet")
