package status

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kiwicollection/crbot/internal/bot"
	commitrepo "github.com/kiwicollection/crbot/internal/commit/repository"
	"github.com/kiwicollection/crbot/internal/health"
	reviewrepo "github.com/kiwicollection/crbot/internal/review/repository"
	userrepo "github.com/kiwicollection/crbot/internal/user/repository"
)

// RegisterRoutes registers the health and status routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	commits commitrepo.Repository,
	reviews reviewrepo.Repository,
	users userrepo.Repository,
	session *bot.Session,
	logger *zap.SugaredLogger,
) {
	healthHandler := health.New(db, logger)
	statusHandler := New(commits, reviews, users, session, logger)

	r.GET("/healthz", healthHandler.Check)
	r.GET("/status", statusHandler.Status)
}
