package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// githubReadLimit caps how much file content a code.read call returns.
// The tool layer truncates observations anyway; this just bounds transfer.
const githubReadLimit = 64 << 10

// GitHub serves code reading and searching through the REST API.
//
// Settings: org (owner used when a tool call names only a repo).
// Credentials: token (fine-grained or classic PAT with repo read scope).
type GitHub struct {
	org    string
	token  string
	client *http.Client
}

// NewGitHub builds the adapter from integration settings and decrypted
// credentials.
func NewGitHub(settings map[string]any, creds map[string]string, client *http.Client) (*GitHub, error) {
	org, _ := settings["org"].(string)
	if org == "" {
		return nil, fmt.Errorf("github integration is missing org")
	}
	if creds["token"] == "" {
		return nil, fmt.Errorf("github integration is missing token")
	}
	return &GitHub{org: org, token: creds["token"], client: client}, nil
}

func (g *GitHub) Name() string { return "github" }

func (g *GitHub) Capabilities() []Capability {
	return []Capability{CapCodeRead, CapCodeSearch, CapCodeListCommits, CapCodeListRepos}
}

func (g *GitHub) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	switch capability {
	case CapCodeRead:
		return g.readFile(ctx, args.String("repo"), args.String("path"), args.String("ref"))
	case CapCodeSearch:
		return g.searchCode(ctx, args.String("query"), args.String("repo"))
	case CapCodeListCommits:
		return g.listCommits(ctx, args.String("repo"), args.String("path"))
	case CapCodeListRepos:
		return g.listRepos(ctx)
	default:
		return "", errUnsupportedCapability(g.Name(), capability)
	}
}

// Ping verifies the token can see the configured org.
func (g *GitHub) Ping(ctx context.Context) error {
	_, err := g.get(ctx, "https://api.github.com/orgs/"+url.PathEscape(g.org), "")
	return err
}

func (g *GitHub) readFile(ctx context.Context, repo, path, ref string) (string, error) {
	if repo == "" || path == "" {
		return "", fmt.Errorf("repo and path are required")
	}
	endpoint := fmt.Sprintf("https://api.github.com/repos/%s/%s/contents/%s",
		url.PathEscape(g.org), url.PathEscape(repo), path)
	if ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}

	body, err := g.get(ctx, endpoint, "application/vnd.github.raw+json")
	if err != nil {
		return "", err
	}
	content := string(body)
	if len(content) > githubReadLimit {
		content = content[:githubReadLimit] + "\n…(file truncated)"
	}
	return fmt.Sprintf("Contents of %s/%s:\n\n%s", repo, path, content), nil
}

func (g *GitHub) searchCode(ctx context.Context, query, repo string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("query is required")
	}
	q := query
	if repo != "" {
		q += fmt.Sprintf(" repo:%s/%s", g.org, repo)
	} else {
		q += " org:" + g.org
	}

	endpoint := "https://api.github.com/search/code?per_page=20&q=" + url.QueryEscape(q)
	body, err := g.get(ctx, endpoint, "")
	if err != nil {
		return "", err
	}

	var resp struct {
		TotalCount int `json:"total_count"`
		Items      []struct {
			Path       string `json:"path"`
			Repository struct {
				FullName string `json:"full_name"`
			} `json:"repository"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse code search response: %w", err)
	}
	if len(resp.Items) == 0 {
		return fmt.Sprintf("No code matches for %q.", query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matches for %q (showing %d):\n", resp.TotalCount, query, len(resp.Items))
	for _, item := range resp.Items {
		fmt.Fprintf(&b, "- %s: %s\n", item.Repository.FullName, item.Path)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (g *GitHub) listCommits(ctx context.Context, repo, path string) (string, error) {
	if repo == "" {
		return "", fmt.Errorf("repo is required")
	}
	endpoint := fmt.Sprintf("https://api.github.com/repos/%s/%s/commits?per_page=20",
		url.PathEscape(g.org), url.PathEscape(repo))
	if path != "" {
		endpoint += "&path=" + url.QueryEscape(path)
	}

	body, err := g.get(ctx, endpoint, "")
	if err != nil {
		return "", err
	}

	var commits []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string    `json:"name"`
				Date time.Time `json:"date"`
			} `json:"author"`
		} `json:"commit"`
	}
	if err := json.Unmarshal(body, &commits); err != nil {
		return "", fmt.Errorf("failed to parse commits response: %w", err)
	}
	if len(commits) == 0 {
		return fmt.Sprintf("No commits found in %s.", repo), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent commits in %s:\n", repo)
	for _, c := range commits {
		subject, _, _ := strings.Cut(c.Commit.Message, "\n")
		fmt.Fprintf(&b, "- %s %s (%s, %s)\n",
			shortSHA(c.SHA), subject, c.Commit.Author.Name,
			c.Commit.Author.Date.Format("2006-01-02"))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (g *GitHub) listRepos(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("https://api.github.com/orgs/%s/repos?per_page=50&sort=pushed", url.PathEscape(g.org))
	body, err := g.get(ctx, endpoint, "")
	if err != nil {
		return "", err
	}

	var repos []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Language    string `json:"language"`
	}
	if err := json.Unmarshal(body, &repos); err != nil {
		return "", fmt.Errorf("failed to parse repos response: %w", err)
	}
	if len(repos) == 0 {
		return fmt.Sprintf("No repositories visible in org %s.", g.org), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Repositories in %s:\n", g.org)
	for _, r := range repos {
		line := "- " + r.Name
		if r.Language != "" {
			line += " (" + r.Language + ")"
		}
		if r.Description != "" {
			line += ": " + r.Description
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (g *GitHub) get(ctx context.Context, endpoint, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if accept == "" {
		accept = "application/vnd.github+json"
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("github", resp.StatusCode)
	}
	return body, nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
