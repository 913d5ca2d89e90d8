package profile

import (
	"context"
	"errors"

	"github.com/devlinkhq/devlink/pkg/logger"
)

// ErrGithubUserNotFound covers any non-2xx answer from the upstream API.
var ErrGithubUserNotFound = errors.New("no github profile found")

// RepoGateway fetches a user's public repositories and hands back the raw
// upstream JSON, which is relayed to the client untouched.
type RepoGateway interface {
	FetchRepos(ctx context.Context, username string) ([]byte, error)
}

type GithubReposUseCase struct {
	gateway RepoGateway
	logger  logger.Logger
}

func NewGithubReposUseCase(gateway RepoGateway, log logger.Logger) *GithubReposUseCase {
	return &GithubReposUseCase{gateway: gateway, logger: log}
}

// Execute is always a live fetch: no caching, no retry.
func (uc *GithubReposUseCase) Execute(ctx context.Context, username string) ([]byte, error) {
	return uc.gateway.FetchRepos(ctx, username)
}
