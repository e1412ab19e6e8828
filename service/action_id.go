package service

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewActionId returns a correlation id of the form act_<unix ms>_<16 hex chars>.
func NewActionId() string {
	id := uuid.New()
	return fmt.Sprintf("act_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(id[:8]))
}
