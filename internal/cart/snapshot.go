package cart

import (
	"encoding/json"

	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

// SnapshotVersion is written into every persisted snapshot so a future
// format change can migrate instead of guessing.
const SnapshotVersion = 1

type snapshot struct {
	Version int        `json:"version"`
	Items   []LineItem `json:"items"`
}

// EncodeSnapshot serializes line items into the persisted snapshot form
func EncodeSnapshot(items []LineItem) ([]byte, error) {
	return json.Marshal(snapshot{
		Version: SnapshotVersion,
		Items:   items,
	})
}

// DecodeSnapshot deserializes a persisted snapshot. A corrupted payload,
// an unknown version, or invalid entries never fail the caller: the result
// degrades to an empty (or partially filtered) cart.
func DecodeSnapshot(data []byte) []LineItem {
	if len(data) == 0 {
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("Discarding corrupted cart snapshot", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	if snap.Version != SnapshotVersion {
		logger.Warn("Discarding cart snapshot with unknown version", map[string]interface{}{
			"version": snap.Version,
		})
		return nil
	}

	items := make([]LineItem, 0, len(snap.Items))
	seen := make(map[string]struct{}, len(snap.Items))
	for _, item := range snap.Items {
		if item.ID == "" || item.Quantity < 1 || item.UnitPrice < 0 {
			logger.Warn("Dropping invalid line item from cart snapshot", map[string]interface{}{
				"product_id": item.ID,
				"quantity":   item.Quantity,
			})
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}
