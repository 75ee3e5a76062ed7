package assistant

import (
	"context"

	"github.com/smartlib/library/internal/entities"
)

// StaticAnswerer is a deterministic Answerer for tests and for deployments
// without an API key. It either echoes a fixed reply or fails with Err.
type StaticAnswerer struct {
	Reply string
	Err   error
}

var _ Answerer = (*StaticAnswerer)(nil)

func (s *StaticAnswerer) Answer(_ context.Context, _ string, _ []entities.Book) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// NewUnavailableAnswerer returns an Answerer that always reports
// ErrUnavailable, used when no API key is configured.
func NewUnavailableAnswerer() *StaticAnswerer {
	return &StaticAnswerer{Err: ErrUnavailable}
}
