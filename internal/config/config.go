package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SanityConfig 描述内容平台（Sanity）的访问参数。
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	APIHost    string
	Timeout    time.Duration
}

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	SiteBaseURL   string
	// StaticDir 非空时从磁盘提供静态文件，否则使用内嵌资源
	StaticDir       string
	LogLevel        string
	LogFormat       string
	Sanity          SanityConfig
	GooglePlacesKey string
	GooglePlaceID   string
	// GooglePlacesBaseURL 替换 Places details 接口地址，留空使用 Google 官方地址
	GooglePlacesBaseURL string
	CronSecret          string
	RedisURL            string
	LeadDedupWindow     time.Duration
	AWSRegion           string
	LeadNotifyFrom      string
	LeadNotifyTo        string
	LeadNotifySMS       string
	AdminUserName       string
	AdminPassword       string
	// BookingWidgetURL 在线预约组件的脚本地址，留空不加载
	BookingWidgetURL string
}

// LoadDotEnv 尝试加载 .env 文件，文件不存在时静默忽略。
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := envOr("LISTEN_ADDR", fmt.Sprintf(":%s", port))

	siteBaseURL := strings.TrimRight(envOr("SITE_BASE_URL", "https://dfwhvac.com"), "/")

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  envOr("DATABASE_PATH", "dfwhvac.db"),
		SessionSecret: envOr("SESSION_SECRET", "dfwhvac-dev-secret"),
		GinMode:       envOr("GIN_MODE", "release"),
		SiteBaseURL:   siteBaseURL,
		StaticDir:     envOr("STATIC_DIR", ""),
		LogLevel:      strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(envOr("LOG_FORMAT", "json")),
		Sanity: SanityConfig{
			ProjectID:  envOr("SANITY_PROJECT_ID", ""),
			Dataset:    envOr("SANITY_DATASET", "production"),
			APIVersion: strings.TrimPrefix(envOr("SANITY_API_VERSION", "2024-01-01"), "v"),
			Token:      envOr("SANITY_API_TOKEN", ""),
			UseCDN:     envBool("SANITY_USE_CDN", true),
			APIHost:    strings.TrimRight(envOr("SANITY_API_HOST", ""), "/"),
			Timeout:    envDuration("CMS_TIMEOUT", 8*time.Second),
		},
		GooglePlacesKey:     envOr("GOOGLE_PLACES_API_KEY", ""),
		GooglePlaceID:       envOr("GOOGLE_PLACE_ID", ""),
		GooglePlacesBaseURL: envOr("GOOGLE_PLACES_BASE_URL", ""),
		CronSecret:          envOr("CRON_SECRET", ""),
		RedisURL:            envOr("REDIS_URL", ""),
		LeadDedupWindow:     envDuration("LEAD_DEDUP_WINDOW", 10*time.Minute),
		AWSRegion:           envOr("AWS_REGION", ""),
		LeadNotifyFrom:      envOr("LEAD_NOTIFY_FROM", ""),
		LeadNotifyTo:        envOr("LEAD_NOTIFY_TO", ""),
		LeadNotifySMS:       envOr("LEAD_NOTIFY_SMS", ""),
		AdminUserName:       envOr("ADMIN_USER_NAME", ""),
		AdminPassword:       envOr("ADMIN_PASSWORD", ""),
		BookingWidgetURL:    envOr("BOOKING_WIDGET_URL", ""),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

// envDuration 支持 "10m" 形式，也兼容纯数字秒数。
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
