package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex bill_01HZX3Q6S0M4J8N2K7T5V9W1YC
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	UUID_PREFIX_CREDIT_CARD    = "card"
	UUID_PREFIX_CREDIT_EXPENSE = "cexp"
	UUID_PREFIX_CREDIT_BILL    = "bill"
	UUID_PREFIX_CREDIT_INCOME  = "cinc"
	UUID_PREFIX_REFUND_EVENT   = "rfnd"
)
