package transport

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	Username string `json:"username"`
}

type TaskRequest struct {
	Text          string `json:"text"`
	Priority      string `json:"priority"`
	EnergyLevel   string `json:"energy_level"`
	Category      string `json:"category"`
	EstimatedTime string `json:"estimated_time"`
	AISuggested   bool   `json:"ai_suggested"`
}
