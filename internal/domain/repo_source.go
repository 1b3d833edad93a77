package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGitHost is used when a repository is given as owner/repo shorthand
const DefaultGitHost = "github.com"

var (
	repoSegmentPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	hostPattern        = regexp.MustCompile(`^[A-Za-z0-9.-]+(:[0-9]+)?$`)
)

// RepoSource is a parsed remote repository reference in canonical form
type RepoSource struct {
	Host  string
	Owner string
	Repo  string
}

// URL returns the canonical https://host/owner/repo form
func (r RepoSource) URL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.Host, r.Owner, r.Repo)
}

// FullName returns owner/repo
func (r RepoSource) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepoSource validates a repository reference and normalizes it.
// Accepted inputs:
// - https://host/owner/repo (http is accepted and upgraded)
// - owner/repo, resolved against defaultHost
// A trailing ".git" and trailing slashes are stripped.
func ParseRepoSource(input, defaultHost string) (*RepoSource, error) {
	source := strings.TrimSpace(input)
	if source == "" {
		return nil, NewError(KindInvalidURL, "empty repository reference", nil)
	}
	if defaultHost == "" {
		defaultHost = DefaultGitHost
	}

	source = strings.TrimRight(source, "/")
	source = strings.TrimSuffix(source, ".git")
	source = strings.TrimRight(source, "/")

	host := strings.ToLower(defaultHost)
	path := source

	if idx := strings.Index(source, "://"); idx >= 0 {
		scheme := strings.ToLower(source[:idx])
		if scheme != "https" && scheme != "http" {
			return nil, invalidURL(input, fmt.Sprintf("unsupported scheme %q", scheme))
		}
		rest := source[idx+3:]
		slash := strings.Index(rest, "/")
		if slash <= 0 {
			return nil, invalidURL(input, "missing owner/repo path")
		}
		host = strings.ToLower(rest[:slash])
		path = rest[slash+1:]
		if !hostPattern.MatchString(host) {
			return nil, invalidURL(input, fmt.Sprintf("invalid host %q", host))
		}
	}

	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		return nil, invalidURL(input, "expected owner/repo")
	}

	owner, repo := parts[0], parts[1]
	for _, segment := range []string{owner, repo} {
		if !isValidRepoSegment(segment) {
			return nil, invalidURL(input, fmt.Sprintf("invalid path segment %q", segment))
		}
	}

	return &RepoSource{Host: host, Owner: owner, Repo: repo}, nil
}

// SameRepo reports whether two remote URLs point at the same repository.
// Handles .git suffixes, scheme differences and scp-style ssh remotes.
func SameRepo(url1, url2 string) bool {
	normalize := func(url string) string {
		url = strings.TrimSuffix(url, "/")
		url = strings.TrimSuffix(url, ".git")
		url = strings.ToLower(url)

		for _, prefix := range []string{"https://", "http://", "git://"} {
			url = strings.TrimPrefix(url, prefix)
		}
		if strings.HasPrefix(url, "ssh://") {
			url = strings.TrimPrefix(url, "ssh://")
			if idx := strings.Index(url, "@"); idx >= 0 {
				url = url[idx+1:]
			}
		}
		// git@host:owner/repo
		if strings.Contains(url, "@") && strings.Contains(url, ":") {
			parts := strings.SplitN(url, "@", 2)
			url = strings.Replace(parts[1], ":", "/", 1)
		}
		return url
	}

	return normalize(url1) == normalize(url2)
}

func isValidRepoSegment(segment string) bool {
	if segment == "" || segment == "." || segment == ".." {
		return false
	}
	return repoSegmentPattern.MatchString(segment)
}

func invalidURL(input, reason string) *Error {
	return NewError(KindInvalidURL,
		fmt.Sprintf("%s (%q); expected https://host/owner/repo or owner/repo", reason, input), nil)
}
