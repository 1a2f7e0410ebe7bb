package types

import "time"

// RepositoryRecord is a normalized repository metadata record supplied by the
// caller. The scoring engine treats it as immutable input; missing optional
// fields (description, language, commit frequency) degrade to zero values.
type RepositoryRecord struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	Stars           int       `json:"stargazers_count"`
	Forks           int       `json:"forks_count"`
	Topics          []string  `json:"topics"`
	UpdatedAt       time.Time `json:"updated_at"`
	IsFork          bool      `json:"is_fork"`
	SizeKB          int       `json:"size"`
	CommitFrequency float64   `json:"commit_frequency,omitempty"` // commits per month
}

// ProfileRequest is the request body for the profile analysis endpoint.
type ProfileRequest struct {
	Username string             `json:"username"`
	Records  []RepositoryRecord `json:"records" binding:"required"`
}

// RepoRequest is the request body for the repository analysis endpoint.
type RepoRequest struct {
	Username string           `json:"username"`
	Record   RepositoryRecord `json:"record"`
	Files    []string         `json:"files"`
}
