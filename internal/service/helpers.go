package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwhite/chronoassist/internal/proposal"
)

// NewProposedEntryID generates ids for proposed entries. The timestamp keeps
// ids roughly ordered; the uuid fragment keeps same-millisecond generations
// distinct.
func NewProposedEntryID() string {
	return fmt.Sprintf("proposed_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

var _ proposal.IDGenerator = NewProposedEntryID
