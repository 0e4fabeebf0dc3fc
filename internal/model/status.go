package model

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Port      int    `json:"port"`
	Service   string `json:"service"`
}

// ServiceStatus is the body of GET /api/status. Uptime is in seconds.
type ServiceStatus struct {
	Service            string   `json:"service"`
	Status             string   `json:"status"`
	Version            string   `json:"version"`
	Uptime             float64  `json:"uptime"`
	Timestamp          string   `json:"timestamp"`
	EndpointsAvailable []string `json:"endpoints_available"`
}
