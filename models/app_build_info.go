package models

// AppBuildInfo describes the running binary. Values are injected at link
// time and exposed via the /api/version endpoint and the client build view.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
