// Package bot implements the event classification and bookkeeping pipeline:
// every inbound platform event is classified, correlated against the ledgers,
// and recorded or ignored. No single bad event is fatal; malformed or
// unstorable events are logged and dropped while the stream continues.
package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	commitmodel "github.com/kiwicollection/crbot/internal/commit/model"
	commitrepo "github.com/kiwicollection/crbot/internal/commit/repository"
	"github.com/kiwicollection/crbot/internal/config"
	"github.com/kiwicollection/crbot/internal/meta"
	"github.com/kiwicollection/crbot/internal/pattern"
	reviewmodel "github.com/kiwicollection/crbot/internal/review/model"
	reviewrepo "github.com/kiwicollection/crbot/internal/review/repository"
	statsmodel "github.com/kiwicollection/crbot/internal/stats/model"
	statsservice "github.com/kiwicollection/crbot/internal/stats/service"
	"github.com/kiwicollection/crbot/internal/timestamp"
	userservice "github.com/kiwicollection/crbot/internal/user/service"
)

// Handler classifies inbound events and drives the ledgers.
type Handler struct {
	cfg       config.BotConfig
	extractor *pattern.Extractor
	port      ChatPort
	users     userservice.Directory
	commits   commitrepo.Repository
	reviews   reviewrepo.Repository
	stats     statsservice.Service
	meta      meta.Repository
	session   *Session
	logger    *zap.SugaredLogger
	wg        sync.WaitGroup
}

// New creates a new event handler instance.
func New(
	cfg config.BotConfig,
	port ChatPort,
	users userservice.Directory,
	commits commitrepo.Repository,
	reviews reviewrepo.Repository,
	stats statsservice.Service,
	metaRepo meta.Repository,
	session *Session,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		cfg:       cfg,
		extractor: pattern.NewExtractor(cfg.Name),
		port:      port,
		users:     users,
		commits:   commits,
		reviews:   reviews,
		stats:     stats,
		meta:      metaRepo,
		session:   session,
		logger:    logger,
	}
}

// OnMessage handles an inbound chat message. The handler runs on its own
// goroutine so a slow write never blocks classification of the next event.
func (h *Handler) OnMessage(ev MessageEvent) {
	h.dispatch(func(ctx context.Context) { h.handleMessage(ctx, ev) })
}

// OnReactionAdded handles an inbound reaction-added event.
func (h *Handler) OnReactionAdded(ev ReactionEvent) {
	h.dispatch(func(ctx context.Context) { h.handleReactionAdded(ctx, ev) })
}

// OnReactionRemoved handles an inbound reaction-removed event.
func (h *Handler) OnReactionRemoved(ev ReactionEvent) {
	h.dispatch(func(ctx context.Context) { h.handleReactionRemoved(ctx, ev) })
}

// Wait blocks until all in-flight event handlers have finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) dispatch(fn func(ctx context.Context)) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		fn(context.Background())
	}()
}

// AnnounceStartup posts the welcome message on the very first run and stamps
// the lastrun info row either way.
func (h *Handler) AnnounceStartup(ctx context.Context) {
	_, err := h.meta.Get(ctx, meta.LastRunKey)
	if errors.Is(err, meta.ErrNotFound) {
		text := h.cfg.Name + " has connected!"
		if postErr := h.port.PostToChannel(ctx, h.cfg.Channel, text); postErr != nil {
			h.logger.Errorw("welcome message failed", "error", postErr)
		}
	} else if err != nil {
		h.logger.Errorw("lastrun lookup failed", "error", err)
	}

	if err := h.meta.Set(ctx, meta.LastRunKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		h.logger.Errorw("lastrun update failed", "error", err)
	}
}

// handleMessage runs the chat message path: commit extraction, command
// dispatch, and build watcher reassignment.
func (h *Handler) handleMessage(ctx context.Context, ev MessageEvent) {
	if ev.UserID == "" || ev.UserID == h.session.BotUserID() {
		return
	}
	if ev.Channel != h.cfg.Channel {
		return
	}

	h.recordCommitReferences(ctx, ev)

	if cmd, ok := h.extractor.Command(ev.Text); ok {
		h.handleCommand(ctx, ev, cmd)
	}

	if uid, ok := h.extractor.BuildWatcherMention(ev.Text); ok {
		h.session.SetBuildWatcher(uid)
		h.logger.Infow("build watcher reassigned", "uid", uid)
		text := "<@" + uid + "> is now the build watcher."
		if err := h.port.PostToChannel(ctx, ev.Channel, text); err != nil {
			h.logger.Errorw("build watcher announcement failed", "error", err)
		}
	}
}

func (h *Handler) recordCommitReferences(ctx context.Context, ev MessageEvent) {
	refs := pattern.CommitReferences(ev.Text)
	if len(refs) == 0 {
		return
	}

	stamp, err := timestamp.Decompose(ev.Timestamp)
	if err != nil {
		h.logger.Warnw("message timestamp unusable, dropping commit references",
			"ts", ev.Timestamp, "error", err)
		return
	}

	author, err := h.users.ResolveOrCreate(ctx, ev.UserID)
	if err != nil {
		h.logger.Errorw("author resolution failed, dropping commit references",
			"uid", ev.UserID, "error", err)
		return
	}

	stored := 0
	for _, ref := range refs {
		c := &commitmodel.Commit{
			Hash:          ref.Hash,
			Repository:    ref.Repository,
			Datestamp:     stamp.Coarse,
			Intervalstamp: stamp.Fine,
			UserID:        author.ID,
		}
		if err := h.commits.Upsert(ctx, c); err != nil {
			h.logger.Errorw("commit upsert failed", "hash", ref.Hash, "error", err)
			continue
		}
		stored++
	}

	if stored > 0 {
		if err := h.port.AddReaction(ctx, ev.Channel, ev.Timestamp, h.cfg.AckReaction); err != nil {
			h.logger.Warnw("ack reaction failed", "ts", ev.Timestamp, "error", err)
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, ev MessageEvent, cmd pattern.Command) {
	switch cmd.Name {
	case "help":
		if err := h.port.SendDirectMessage(ctx, ev.UserID, helpText(h.cfg.Name)); err != nil {
			h.logger.Errorw("help reply failed", "uid", ev.UserID, "error", err)
		}

	case "stats":
		entries, err := h.stats.Leaderboard(ctx, cmd.Argument)
		if err != nil {
			if errors.Is(err, statsmodel.ErrUnknownScope) {
				h.logger.Debugw("stats command with unknown scope", "scope", cmd.Argument)
				return
			}
			h.logger.Errorw("leaderboard failed", "scope", cmd.Argument, "error", err)
			return
		}
		text := formatLeaderboard(cmd.Argument, entries)
		if err := h.port.PostToChannel(ctx, ev.Channel, text); err != nil {
			h.logger.Errorw("stats reply failed", "error", err)
		}

	default:
		h.logger.Debugw("unknown command ignored", "name", cmd.Name)
	}
}

// handleReactionAdded runs the review insertion path. The reacted-to post's
// stamp must match a stored commit; otherwise the reaction is ignored.
func (h *Handler) handleReactionAdded(ctx context.Context, ev ReactionEvent) {
	if ev.UserID == "" || ev.UserID == h.session.BotUserID() {
		return
	}

	commented, tracked := h.cfg.ReactionKind(ev.Reaction)
	if !tracked {
		return
	}

	stamp, err := timestamp.Decompose(ev.ItemTimestamp)
	if err != nil {
		h.logger.Warnw("reaction target timestamp unusable, dropping event",
			"ts", ev.ItemTimestamp, "error", err)
		return
	}

	c, err := h.commits.FindByTimestamp(ctx, stamp)
	if err != nil {
		if errors.Is(err, commitmodel.ErrCommitNotFound) {
			h.logger.Debugw("reaction on a post without a commit, ignored", "stamp", stamp.String())
			return
		}
		h.logger.Errorw("commit lookup failed, dropping reaction", "stamp", stamp.String(), "error", err)
		return
	}

	reviewer, err := h.users.ResolveOrCreate(ctx, ev.UserID)
	if err != nil {
		h.logger.Errorw("reviewer resolution failed, dropping reaction", "uid", ev.UserID, "error", err)
		return
	}

	review := &reviewmodel.Review{
		CommitHash:    c.Hash,
		Datestamp:     stamp.Coarse,
		Intervalstamp: stamp.Fine,
		UserID:        reviewer.ID,
		Commented:     commented,
		Type:          ev.Reaction,
	}
	if err := h.reviews.Insert(ctx, review); err != nil {
		h.logger.Errorw("review insert failed", "commit_hash", c.Hash, "error", err)
	}
}

// handleReactionRemoved reverses a review insertion. The delete matches the
// stamp, reaction type, and removing user; it does not require the commit to
// still exist.
func (h *Handler) handleReactionRemoved(ctx context.Context, ev ReactionEvent) {
	if ev.UserID == "" || ev.UserID == h.session.BotUserID() {
		return
	}

	if _, tracked := h.cfg.ReactionKind(ev.Reaction); !tracked {
		return
	}

	stamp, err := timestamp.Decompose(ev.ItemTimestamp)
	if err != nil {
		h.logger.Warnw("reaction target timestamp unusable, dropping event",
			"ts", ev.ItemTimestamp, "error", err)
		return
	}

	reviewer, err := h.users.ResolveOrCreate(ctx, ev.UserID)
	if err != nil {
		h.logger.Errorw("reviewer resolution failed, dropping removal", "uid", ev.UserID, "error", err)
		return
	}

	deleted, err := h.reviews.DeleteByTimestampAndType(ctx, stamp, ev.Reaction, reviewer.ID)
	if err != nil {
		h.logger.Errorw("review delete failed", "stamp", stamp.String(), "error", err)
		return
	}
	if deleted == 0 {
		h.logger.Debugw("reaction removal matched no review", "stamp", stamp.String(), "type", ev.Reaction)
	}
}
