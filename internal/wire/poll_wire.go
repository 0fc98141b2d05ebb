package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePoll(
	r chi.Router,
	pollHandler *adaptor.PollHandler,
	eventsHandler *adaptor.EventsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Anonymous users see results; authenticated ones also get their vote
	r.With(middleware.OptionalAuth(repo.Session, repo.Role, log)).
		Get("/api/polls", pollHandler.ListPolls)
	r.With(middleware.OptionalAuth(repo.Session, repo.Role, log)).
		Get("/api/polls/{id}", pollHandler.GetPoll)

	r.With(middleware.AuthSession(repo.Session, repo.Role, log)).
		Post("/api/polls/{id}/vote", pollHandler.Vote)
	r.With(middleware.AuthSession(repo.Session, repo.Role, log)).
		Post("/api/polls/request", pollHandler.RequestPoll)

	// Live change notifications
	r.Get("/api/events", eventsHandler.Stream)
}
