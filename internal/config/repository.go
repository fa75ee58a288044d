package config

import (
	"fmt"
	"strings"
)

// RepositoryConfig identifies a GitHub repository whose releases are rendered
type RepositoryConfig struct {
	Owner string // GitHub owner (e.g., "golang", "kubernetes")
	Repo  string // GitHub repo (e.g., "go", "kubernetes")
	Tag   string // Release tag, when given as part of a release URL
}

// Predefined repositories, keyed by alias
var predefined = map[string]RepositoryConfig{
	"actions-runner": {Owner: "actions", Repo: "runner"},
	"runner":         {Owner: "actions", Repo: "runner"},
	"kubernetes":     {Owner: "kubernetes", Repo: "kubernetes"},
	"k8s":            {Owner: "kubernetes", Repo: "kubernetes"},
	"pulumi":         {Owner: "pulumi", Repo: "pulumi"},
	"cobra":          {Owner: "spf13", Repo: "cobra"},
}

// GetPredefinedConfig returns a predefined config by alias
func GetPredefinedConfig(name string) (*RepositoryConfig, error) {
	config, ok := predefined[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown repository: %s", name)
	}
	return &config, nil
}

// ParseRepositoryString parses an alias, "owner/repo", or a GitHub URL. A
// ".../releases/tag/<tag>" URL also sets Tag.
func ParseRepositoryString(repoStr string) (*RepositoryConfig, error) {
	if config, err := GetPredefinedConfig(repoStr); err == nil {
		return config, nil
	}

	path := strings.TrimSpace(repoStr)
	if i := strings.Index(path, "github.com/"); i != -1 {
		path = path[i+len("github.com/"):]
	}
	path = strings.Trim(path, "/")

	var tag string
	if i := strings.Index(path, "/releases/tag/"); i != -1 {
		tag = strings.Trim(path[i+len("/releases/tag/"):], "/")
		path = path[:i]
	}
	path = strings.Split(path, "/releases")[0]
	path = strings.Split(path, "/tags")[0]

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository format: %s (expected: owner/repo, GitHub URL or predefined name)", repoStr)
	}

	return &RepositoryConfig{
		Owner: parts[0],
		Repo:  strings.TrimSuffix(parts[1], ".git"),
		Tag:   tag,
	}, nil
}

// FullName returns the full repository name (owner/repo)
func (c *RepositoryConfig) FullName() string {
	return fmt.Sprintf("%s/%s", c.Owner, c.Repo)
}
