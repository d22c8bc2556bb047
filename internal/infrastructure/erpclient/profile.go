package erpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// POSProfile binds a register configuration to a warehouse. The mapping is
// 1:1, so selecting a warehouse resolves to exactly one profile.
type POSProfile struct {
	Name      string `json:"name"`
	Warehouse string `json:"warehouse"`
}

// ListPOSProfiles returns the tenant's POS profiles. The first entry is the
// conventional auto-select target when the terminal has no preference.
func (c *Client) ListPOSProfiles(ctx context.Context) ([]POSProfile, error) {
	var result struct {
		Profiles []POSProfile `json:"profiles"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/pos/profiles", nil, &result, nil); err != nil {
		return nil, err
	}
	return result.Profiles, nil
}

// Item is a sellable product as returned by the item lookup
type Item struct {
	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	Rate     decimal.Decimal `json:"rate"`
	Stock    decimal.Decimal `json:"stock"`
	Unit     string          `json:"unit"`
}

// SearchItems looks up sellable items by code or name fragment within the
// given warehouse. This is the single "search item by code" entry point that
// barcode scanners and other input adapters feed.
func (c *Client) SearchItems(ctx context.Context, warehouse, query string) ([]Item, error) {
	var result struct {
		Items []Item `json:"items"`
	}
	path := "/api/v1/pos/items?warehouse=" + url.QueryEscape(warehouse) + "&q=" + url.QueryEscape(query)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result, nil); err != nil {
		return nil, err
	}
	return result.Items, nil
}
