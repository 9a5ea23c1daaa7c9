package config

import "time"

const (
	apiBaseURLVar  = "NEXTSTEPS_API_URL"
	httpTimeoutVar = "HTTP_TIMEOUT"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the base URL of the remote NextSteps service
// (e.g. "http://localhost:8080").
func (API) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:8080")
}

func (API) GetHTTPTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(httpTimeoutVar, "30s"))
	if err != nil {
		return 30 * time.Second
	}
	return d
}
