package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// GenerateID builds a row identifier of the form prefix_millis_suffix, e.g.
// mod_1719320000000_4f9a1c2b0. Identifiers stay unique in practice through
// the millisecond timestamp plus a random suffix; the store does not enforce
// uniqueness beyond the primary key.
func GenerateID(category enums.ImportCategory) string {
	return generateID(category.IDPrefix())
}

// GenerateProjectID builds an identifier for customer projects, which are
// created through the API rather than imported.
func GenerateProjectID() string {
	return generateID("proj")
}

func generateID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
