package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/nickromney-org/localtime/internal/config"
	"github.com/nickromney-org/localtime/internal/github"
	"github.com/nickromney-org/localtime/pkg/localtime"
	"github.com/nickromney-org/localtime/pkg/types"
	"github.com/spf13/cobra"
)

// releaseFetcher is the part of the GitHub client the release command uses
type releaseFetcher interface {
	GetLatestRelease(ctx context.Context) (*types.Release, error)
	GetReleaseByVersion(ctx context.Context, ver *semver.Version) (*types.Release, error)
}

// newFetcher is replaced in tests
var newFetcher = func(token string, repo *config.RepositoryConfig) releaseFetcher {
	return github.NewClient(token, repo.Owner, repo.Repo)
}

func newReleaseCmd(opts *options) *cobra.Command {
	releaseCmd := &cobra.Command{
		Use:   "release <repository> [version]",
		Short: "Render the publish time of a GitHub release",
		Long: `Fetch a GitHub release and render when it was published.

The repository may be owner/repo, a GitHub URL (including a release tag URL)
or a predefined alias such as "runner" or "k8s". Without a version the
latest release is used.`,
		Example: `  # Latest cobra release in Sydney time
  localtime release spf13/cobra -z Australia/Sydney

  # A specific version, 24-hour clock
  localtime release k8s 1.32.0 -m`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(cmd, opts, args)
		},
	}

	releaseCmd.Flags().StringVarP(&opts.githubToken, "token", "t", os.Getenv("GITHUB_TOKEN"), "GitHub token (or GITHUB_TOKEN env var)")

	return releaseCmd
}

func runRelease(cmd *cobra.Command, opts *options, args []string) error {
	repoConfig, err := config.ParseRepositoryString(args[0])
	if err != nil {
		return err
	}

	versionStr := repoConfig.Tag
	if len(args) == 2 {
		versionStr = args[1]
	}

	formatter, err := newFormatter(opts)
	if err != nil {
		return err
	}

	client := newFetcher(detectGitHubToken(opts.githubToken), repoConfig)

	var release *types.Release
	if versionStr == "" {
		release, err = client.GetLatestRelease(cmd.Context())
	} else {
		ver, parseErr := semver.NewVersion(versionStr)
		if parseErr != nil {
			return fmt.Errorf("invalid version %q: %w", versionStr, parseErr)
		}
		release, err = client.GetReleaseByVersion(cmd.Context(), ver)
	}
	if err != nil {
		return err
	}

	cfg := displayConfig(cmd, opts, localtime.InstantOf(release.PublishedAt))
	return output(cmd, opts, cfg, formatter.Format(cfg), release)
}

// detectGitHubToken attempts to find a GitHub token from multiple sources
func detectGitHubToken(providedToken string) string {
	// 1. Explicit -t flag or GITHUB_TOKEN env var
	if providedToken != "" {
		return providedToken
	}

	// 2. GitHub CLI
	ghToken, err := getGitHubCLIToken()
	if err == nil && ghToken != "" {
		return ghToken
	}

	// 3. Unauthenticated
	return ""
}

// getGitHubCLIToken attempts to retrieve a token from the GitHub CLI
func getGitHubCLIToken() (string, error) {
	out, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("gh auth token returned empty")
	}

	return token, nil
}
