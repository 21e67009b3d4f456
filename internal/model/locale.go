package model

import "time"

// LocaleBundle is the key-to-string table for one language. Stored bundles
// override the built-in tables key by key.
type LocaleBundle struct {
	Language  string            `json:"language" bson:"_id"`
	Entries   map[string]string `json:"entries" bson:"entries"`
	UpdatedAt time.Time         `json:"updatedAt" bson:"updatedAt"`
}
