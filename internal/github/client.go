package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
	gh "github.com/google/go-github/v57/github"
	"github.com/nickromney-org/localtime/pkg/types"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client for a single repository
type Client struct {
	gh    *gh.Client
	Owner string
	Repo  string
}

// NewClient creates a new GitHub API client
func NewClient(token, owner, repo string) *Client {
	var client *gh.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(context.Background(), ts)
		client = gh.NewClient(tc)
	} else {
		client = gh.NewClient(nil)
	}

	return &Client{
		gh:    client,
		Owner: owner,
		Repo:  repo,
	}
}

// GetLatestRelease fetches the latest published release
func (c *Client) GetLatestRelease(ctx context.Context) (*types.Release, error) {
	release, _, err := c.gh.Repositories.GetLatestRelease(ctx, c.Owner, c.Repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest release of %s/%s: %w", c.Owner, c.Repo, err)
	}

	return c.parseRelease(release)
}

// GetReleaseByVersion fetches the release tagged with ver, trying the tag as
// written and with and without a "v" prefix
func (c *Client) GetReleaseByVersion(ctx context.Context, ver *semver.Version) (*types.Release, error) {
	for _, tag := range tagCandidates(ver) {
		release, _, err := c.gh.Repositories.GetReleaseByTag(ctx, c.Owner, c.Repo, tag)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to get release %s of %s/%s: %w", tag, c.Owner, c.Repo, err)
		}
		return c.parseRelease(release)
	}

	return nil, fmt.Errorf("version %s does not exist in %s/%s releases", ver, c.Owner, c.Repo)
}

// tagCandidates lists the tags a version may have been published under
func tagCandidates(ver *semver.Version) []string {
	candidates := []string{ver.Original(), "v" + ver.String(), ver.String()}

	seen := make(map[string]bool)
	var tags []string
	for _, tag := range candidates {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func isNotFound(err error) bool {
	var errResp *gh.ErrorResponse
	return errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound
}

// parseRelease converts a GitHub release to our Release type
func (c *Client) parseRelease(ghRelease *gh.RepositoryRelease) (*types.Release, error) {
	tagName := ghRelease.GetTagName()
	if tagName == "" {
		return nil, fmt.Errorf("release has no tag name")
	}

	// Tags like "nightly" have no version; only the publish time is required
	var ver *semver.Version
	if parsed, err := semver.NewVersion(tagName); err == nil {
		ver = parsed
	}

	publishedAt := ghRelease.GetPublishedAt()
	if publishedAt.IsZero() {
		return nil, fmt.Errorf("release %s has no published date", tagName)
	}

	return &types.Release{
		Version:     ver,
		Tag:         tagName,
		Name:        ghRelease.GetName(),
		PublishedAt: publishedAt.Time,
		URL:         ghRelease.GetHTMLURL(),
	}, nil
}
