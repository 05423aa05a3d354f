package models

import "time"

// DownloadLinkValidityDays is the fixed validity window for every link.
// The expiry is advisory metadata; nothing in the core enforces it against
// the current time.
const DownloadLinkValidityDays = 30

// DownloadLinkMaxDownloads is the fixed per-link download cap.
const DownloadLinkMaxDownloads = 5

// DownloadLink is a time-boxed, usage-capped access grant for a digital asset.
// Links are never deleted; they can only be deactivated.
type DownloadLink struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	ProductName   string    `json:"product_name"`
	Key           string    `json:"key"`
	ExpiresAt     time.Time `json:"expires_at"`
	MaxDownloads  int       `json:"max_downloads"`
	DownloadCount int       `json:"download_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
