package analytics

import (
	"encoding/json"

	"github.com/grovemarket/marketplace-manager/internal/entity"
)

// rawItem mirrors one entry of the ordered_items blob before validation.
// json.Number keeps the distinction between integers and floats so a
// fractional quantity can be rejected.
type rawItem struct {
	ProductID *string      `json:"productId"`
	Quantity  *json.Number `json:"quantity"`
	SellerID  *json.Number `json:"sellerId"`
}

// extractOrderItems decodes the ordered_items blob of one order into a
// typed item list. The blob is either a JSON array or a JSON string that
// itself contains a serialized array (legacy rows were written through a
// double-encoding path). Malformed blobs and structurally invalid
// sequences degrade to an empty list, never to a partial one and never
// to an error: historical records must not block aggregate computations.
func extractOrderItems(raw json.RawMessage) []entity.OrderedItem {
	if len(raw) == 0 {
		return nil
	}

	payload := []byte(raw)

	// Legacy shape: the array serialized into a JSON string.
	var asString string
	if err := json.Unmarshal(payload, &asString); err == nil {
		payload = []byte(asString)
	}

	var entries []rawItem
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil
	}

	items := make([]entity.OrderedItem, 0, len(entries))
	for _, e := range entries {
		if e.ProductID == nil || *e.ProductID == "" || e.Quantity == nil {
			return nil
		}
		qty, err := e.Quantity.Int64()
		if err != nil || qty < 0 {
			return nil
		}
		item := entity.OrderedItem{
			ProductID: *e.ProductID,
			Quantity:  int(qty),
		}
		if e.SellerID != nil {
			sid, err := e.SellerID.Int64()
			if err != nil {
				return nil
			}
			s := int(sid)
			item.SellerID = &s
		}
		items = append(items, item)
	}
	return items
}
