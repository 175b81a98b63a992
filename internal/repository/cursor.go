package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// pageKey is the last row of a page in the (created_at, order_id) keyset.
// Encoded it becomes the opaque cursor handed back to callers, the same
// round-trip shape as the upstream store's exclusive start key.
type pageKey struct {
	CreatedAt string `json:"createdAt"`
	OrderID   string `json:"orderId"`
}

func encodeCursor(key pageKey) string {
	b, _ := json.Marshal(key)
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeCursor(cursor string) (pageKey, error) {
	var key pageKey

	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return key, fmt.Errorf("decode page cursor: %w", err)
	}
	if err := json.Unmarshal(b, &key); err != nil {
		return key, fmt.Errorf("unmarshal page cursor: %w", err)
	}

	return key, nil
}
