package dto

type LowStockAlertRequest struct {
	// Recipient overrides the configured ALERT_RECIPIENT when set.
	Recipient *string `json:"recipient" validate:"omitempty,email"`
}

type LowStockAlertResponse struct {
	JobID    string `json:"job_id"`
	Enqueued bool   `json:"enqueued"`
}
