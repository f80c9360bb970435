package entity

// EndpointConfig is one configured relay endpoint row.
type EndpointConfig struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	APIKey  string `json:"api_key"`
	Enabled bool   `json:"enabled"`
}

// DispatchRequest is the inbound task-creation request.
type DispatchRequest struct {
	AccessToken string         `json:"access_token"`
	Payload     map[string]any `json:"payload"`
	UserAgent   string         `json:"user_agent"`
	Flow        string         `json:"flow"`
}

// DispatchResult is returned after a relay endpoint accepted the task.
type DispatchResult struct {
	TaskID string `json:"task_id"`
}
