package dto

type UpdateSettingRequest struct {
	Section string `json:"section" validate:"required,max=50"`
	Key     string `json:"key" validate:"required,max=100"`
	Value   string `json:"value" validate:"max=2000"`
}

type SiteInfoResponse struct {
	Settings map[string]map[string]string `json:"settings"`
}
