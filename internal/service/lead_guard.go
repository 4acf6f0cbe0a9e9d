package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/format"
)

// LeadGuard 判断同一联系人在时间窗口内是否已经提交过同类型线索。
// Claim 返回 true 表示这是窗口内的第一次提交。
// Release 撤销一次 Claim，入库失败时调用，让用户可以重试。
type LeadGuard interface {
	Claim(ctx context.Context, lead *db.Lead) (bool, error)
	Release(ctx context.Context, lead *db.Lead) error
}

// dedupKey identifies a contact: phone digits first, e-mail otherwise.
func dedupKey(lead *db.Lead) string {
	contact := format.NationalDigits(lead.Phone)
	if contact == "" {
		contact = strings.ToLower(strings.TrimSpace(lead.Email))
	}
	if contact == "" {
		return ""
	}
	return "lead:dedup:" + lead.LeadType + ":" + contact
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// RedisLeadGuard claims a key with SET NX and lets it expire after the window.
type RedisLeadGuard struct {
	client *redis.Client
	window time.Duration
}

// NewRedisLeadGuard builds a guard over an existing client.
func NewRedisLeadGuard(client *redis.Client, window time.Duration) *RedisLeadGuard {
	return &RedisLeadGuard{client: client, window: window}
}

// Claim implements LeadGuard.
func (g *RedisLeadGuard) Claim(ctx context.Context, lead *db.Lead) (bool, error) {
	key := dedupKey(lead)
	if key == "" || g.window <= 0 {
		return true, nil
	}
	ok, err := g.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), g.window).Result()
	if err != nil {
		return true, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

// Release implements LeadGuard.
func (g *RedisLeadGuard) Release(ctx context.Context, lead *db.Lead) error {
	key := dedupKey(lead)
	if key == "" || g.window <= 0 {
		return nil
	}
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// DBLeadGuard looks for a recent row with the same contact. Used when no
// redis is configured.
type DBLeadGuard struct {
	db     *gorm.DB
	window time.Duration
	now    func() time.Time
}

// NewDBLeadGuard builds a guard backed by the leads table.
func NewDBLeadGuard(gdb *gorm.DB, window time.Duration) *DBLeadGuard {
	return &DBLeadGuard{db: gdb, window: window, now: time.Now}
}

// Claim implements LeadGuard.
func (g *DBLeadGuard) Claim(ctx context.Context, lead *db.Lead) (bool, error) {
	if g.window <= 0 || (lead.Phone == "" && lead.Email == "") {
		return true, nil
	}

	query := g.db.WithContext(ctx).Model(&db.Lead{}).
		Where("lead_type = ?", lead.LeadType).
		Where("created_at > ?", g.now().Add(-g.window))
	switch {
	case lead.Phone != "" && lead.Email != "":
		query = query.Where("phone = ? OR LOWER(email) = ?", lead.Phone, strings.ToLower(lead.Email))
	case lead.Phone != "":
		query = query.Where("phone = ?", lead.Phone)
	default:
		query = query.Where("LOWER(email) = ?", strings.ToLower(lead.Email))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return true, err
	}
	return count == 0, nil
}

// Release implements LeadGuard. Nothing was reserved: the claim is the row itself.
func (g *DBLeadGuard) Release(context.Context, *db.Lead) error {
	return nil
}

// NoopLeadGuard accepts every submission.
type NoopLeadGuard struct{}

// Claim implements LeadGuard.
func (NoopLeadGuard) Claim(context.Context, *db.Lead) (bool, error) {
	return true, nil
}

// Release implements LeadGuard.
func (NoopLeadGuard) Release(context.Context, *db.Lead) error {
	return nil
}
