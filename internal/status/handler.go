// Package status provides the HTTP status endpoint: ledger row counts and
// the current build watcher assignment.
package status

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kiwicollection/crbot/internal/bot"
	commitrepo "github.com/kiwicollection/crbot/internal/commit/repository"
	reviewrepo "github.com/kiwicollection/crbot/internal/review/repository"
	userrepo "github.com/kiwicollection/crbot/internal/user/repository"
)

// Handler handles status requests.
type Handler struct {
	commits commitrepo.Repository
	reviews reviewrepo.Repository
	users   userrepo.Repository
	session *bot.Session
	logger  *zap.SugaredLogger
}

// New creates a new status handler instance.
func New(
	commits commitrepo.Repository,
	reviews reviewrepo.Repository,
	users userrepo.Repository,
	session *bot.Session,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		commits: commits,
		reviews: reviews,
		users:   users,
		session: session,
		logger:  logger,
	}
}

// Response represents the status response.
type Response struct {
	Commits      int64  `json:"commits"`
	Reviews      int64  `json:"reviews"`
	Users        int64  `json:"users"`
	BuildWatcher string `json:"build_watcher,omitempty"`
	UptimeSec    int64  `json:"uptime_sec"`
}

// Status handles GET /status requests.
func (h *Handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	commits, err := h.commits.Count(ctx)
	if err != nil {
		h.logger.Errorw("status commit count failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	reviews, err := h.reviews.Count(ctx)
	if err != nil {
		h.logger.Errorw("status review count failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	users, err := h.users.Count(ctx)
	if err != nil {
		h.logger.Errorw("status user count failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, Response{
		Commits:      commits,
		Reviews:      reviews,
		Users:        users,
		BuildWatcher: h.session.BuildWatcher(),
		UptimeSec:    int64(time.Since(h.session.StartedAt()) / time.Second),
	})
}
