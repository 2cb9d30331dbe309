package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// PickupCode renders the PNG customers scan at the counter to identify
// their order.
func PickupCode(baseURL string, orderID int) ([]byte, error) {
	data := fmt.Sprintf("%s/pickup?order_id=%d", baseURL, orderID)
	return qrcode.Encode(data, qrcode.Medium, 256)
}

// EntryCode renders the PNG posted on a table that opens the ordering
// front-end.
func EntryCode(baseURL string) ([]byte, error) {
	return qrcode.Encode(baseURL, qrcode.Medium, 256)
}
