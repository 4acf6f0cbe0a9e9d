// Package app wires the configuration into the services shared by the
// server and the maintenance commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dfwhvac/internal/cms"
	"github.com/dfwhvac/internal/config"
	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/handler"
	"github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/metrics"
	"github.com/dfwhvac/internal/notify"
	"github.com/dfwhvac/internal/router"
	"github.com/dfwhvac/internal/service"
	"github.com/dfwhvac/web"
)

// App holds the long lived components.
type App struct {
	Config  config.AppConfig
	Log     logger.Logger
	Metrics *metrics.Metrics
	DB      *gorm.DB
	CMS     *cms.Client
	Store   *content.Store
	Leads   *service.LeadService
	Reviews *service.ReviewService
	Admins  *service.AdminService

	redis *redis.Client
}

// New 打开数据库并组装各个服务。Redis 与 AWS 均为可选项。
func New(ctx context.Context, cfg config.AppConfig, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.NewNop()
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Metrics: metrics.New(),
		DB:      db.DB,
	}

	a.CMS = cms.NewClient(cms.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		Token:      cfg.Sanity.Token,
		UseCDN:     cfg.Sanity.UseCDN,
		APIHost:    cfg.Sanity.APIHost,
		Timeout:    cfg.Sanity.Timeout,
	}, nil)
	if !a.CMS.Enabled() {
		log.Warn("cms project id not set, serving built-in content", nil)
	}
	a.Store = content.NewStore(a.CMS, log.WithFields(map[string]interface{}{"component": "content"}), a.Metrics)

	guard, err := a.leadGuard()
	if err != nil {
		a.Close()
		return nil, err
	}

	notifier, err := notify.New(ctx, notify.Config{
		Region: cfg.AWSRegion,
		From:   cfg.LeadNotifyFrom,
		To:     notify.SplitRecipients(cfg.LeadNotifyTo),
		SMSTo:  cfg.LeadNotifySMS,
	}, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Leads = service.NewLeadService(a.DB, guard, notifier, log.WithFields(map[string]interface{}{"component": "leads"}), a.Metrics)
	a.Reviews = service.NewReviewService(a.DB, service.ReviewConfig{
		APIKey:  cfg.GooglePlacesKey,
		PlaceID: cfg.GooglePlaceID,
		BaseURL: cfg.GooglePlacesBaseURL,
	}, nil, a.CMS, log.WithFields(map[string]interface{}{"component": "reviews"}))
	a.Admins = service.NewAdminService(a.DB)

	if created, err := a.Admins.EnsureAdmin(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Error("ensure admin user failed", map[string]interface{}{"error": err})
	} else if created {
		log.Info("admin user created", map[string]interface{}{"username": cfg.AdminUserName})
	}

	return a, nil
}

// leadGuard 配置了 REDIS_URL 时使用 Redis，否则在数据库中查重。
func (a *App) leadGuard() (service.LeadGuard, error) {
	window := a.Config.LeadDedupWindow
	if window <= 0 {
		return service.NoopLeadGuard{}, nil
	}
	if url := strings.TrimSpace(a.Config.RedisURL); url != "" {
		client, err := service.NewRedisClient(url)
		if err != nil {
			return nil, err
		}
		a.redis = client
		a.Log.Info("lead dedup uses redis", map[string]interface{}{"window": window.String()})
		return service.NewRedisLeadGuard(client, window), nil
	}
	return service.NewDBLeadGuard(a.DB, window), nil
}

// staticFiles is the asset tree the pages link to.
func (a *App) staticFiles() fs.FS {
	if dir := strings.TrimSpace(a.Config.StaticDir); dir != "" {
		return os.DirFS(dir)
	}
	return web.StaticFS()
}

// Router builds the HTTP handler of the site.
func (a *App) Router() (*gin.Engine, error) {
	api := handler.NewAPI(handler.Deps{
		Store:   a.Store,
		Leads:   a.Leads,
		Reviews: a.Reviews,
		Admins:  a.Admins,
		Log:     a.Log,
		Options: handler.Options{
			BaseURL:          a.Config.SiteBaseURL,
			CronSecret:       a.Config.CronSecret,
			StaticFiles:      a.staticFiles(),
			BookingWidgetURL: a.Config.BookingWidgetURL,
		},
	})
	return router.SetupRouter(router.Deps{
		API:           api,
		Log:           a.Log,
		Metrics:       a.Metrics,
		SessionSecret: a.Config.SessionSecret,
		StaticDir:     a.Config.StaticDir,
		SecureCookie:  a.Config.GinMode == gin.ReleaseMode && strings.HasPrefix(a.Config.SiteBaseURL, "https://"),
	})
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, db.Close())
	return errors.Join(errs...)
}
