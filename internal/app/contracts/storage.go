package contracts

import (
	"context"
)

// ArchiveService persists the exact signed gateway payload per
// transaction so a later reconciliation can reproduce what was sent.
type ArchiveService interface {
	ArchivePayload(ctx context.Context, transactionID string, payload []byte) error
}
