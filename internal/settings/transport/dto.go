package transport

// SettingResponse is one configurable site setting.
type SettingResponse struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
}

// SettingUpdate is one key/value pair of a bulk update.
type SettingUpdate struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"max=5000"`
}

// BulkUpdateRequest is the admin bulk update payload.
type BulkUpdateRequest struct {
	Settings []SettingUpdate `json:"settings" validate:"required,min=1,dive"`
}
