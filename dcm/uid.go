package dcm

import (
	"math/big"

	"github.com/google/uuid"
)

// UIDRoot is the root for UIDs derived from a UUID (ISO/IEC 9834-8).
const UIDRoot = "2.25."

// NewUID returns a fresh UID of the form 2.25.<uuid as decimal>.
func NewUID() string {
	return UUIDToUID(uuid.New())
}

func UUIDToUID(u uuid.UUID) string {
	return UIDRoot + new(big.Int).SetBytes(u[:]).String()
}
