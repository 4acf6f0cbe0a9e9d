package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dfwhvac/internal/cms"
	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/logger"
)

// ErrReviewSyncUnavailable 表示缺少 Google 或 CMS 的密钥，无法同步。
var ErrReviewSyncUnavailable = errors.New("review sync is not configured")

// 外部接口不可用且没有快照时使用的默认值。
const (
	DefaultReviewRating   = 5.0
	DefaultReviewCount    = 129
	DefaultReviewBusiness = "DFW HVAC"
)

const placesDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

// Review sources reported by Current.
const (
	ReviewSourceGoogle   = "google"
	ReviewSourceSnapshot = "snapshot"
	ReviewSourceDefault  = "default"
)

// GoogleReviews is the rating summary served by /api/google-reviews.
type GoogleReviews struct {
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	BusinessName string    `json:"business_name"`
	UpdatedAt    time.Time `json:"updated_at"`
	Source       string    `json:"source"`
}

// SyncResult reports one sync run.
type SyncResult struct {
	Success       bool      `json:"success"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	TransactionID string    `json:"transactionId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Mutator is the write side of the CMS client.
type Mutator interface {
	Mutate(ctx context.Context, mutations ...cms.Mutation) (cms.MutateResult, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ReviewConfig holds the Google Places coordinates.
type ReviewConfig struct {
	APIKey  string
	PlaceID string
	// BaseURL replaces the Places details endpoint in tests.
	BaseURL string
}

// ReviewService reads Google ratings and copies them into the CMS.
type ReviewService struct {
	db   *gorm.DB
	cfg  ReviewConfig
	http httpDoer
	cms  Mutator
	log  logger.Logger
	now  func() time.Time
}

// NewReviewService builds a review service. A nil httpClient gets a 10s default.
func NewReviewService(gdb *gorm.DB, cfg ReviewConfig, httpClient httpDoer, mutator Mutator, log logger.Logger) *ReviewService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.NewNop()
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = placesDetailsURL
	}
	return &ReviewService{db: gdb, cfg: cfg, http: httpClient, cms: mutator, log: log, now: time.Now}
}

func (s *ReviewService) googleConfigured() bool {
	return strings.TrimSpace(s.cfg.APIKey) != "" && strings.TrimSpace(s.cfg.PlaceID) != ""
}

type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string   `json:"name"`
		Rating           *float64 `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
	} `json:"result"`
}

// fetchGoogle calls the Places details endpoint.
func (s *ReviewService) fetchGoogle(ctx context.Context) (GoogleReviews, error) {
	params := url.Values{}
	params.Set("place_id", s.cfg.PlaceID)
	params.Set("fields", "name,rating,user_ratings_total")
	params.Set("key", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return GoogleReviews{}, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return GoogleReviews{}, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return GoogleReviews{}, fmt.Errorf("decode places response: %w", err)
	}
	if decoded.Status != "OK" {
		return GoogleReviews{}, fmt.Errorf("places status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	out := GoogleReviews{
		Rating:       DefaultReviewRating,
		ReviewCount:  decoded.Result.UserRatingsTotal,
		BusinessName: decoded.Result.Name,
		UpdatedAt:    s.now().UTC(),
		Source:       ReviewSourceGoogle,
	}
	if decoded.Result.Rating != nil {
		out.Rating = *decoded.Result.Rating
	}
	if out.BusinessName == "" {
		out.BusinessName = DefaultReviewBusiness
	}
	return out, nil
}

// Current 优先读取 Google，失败时依次退回最近一次快照和默认值。
func (s *ReviewService) Current(ctx context.Context) GoogleReviews {
	if s.googleConfigured() {
		reviews, err := s.fetchGoogle(ctx)
		if err == nil {
			return reviews
		}
		s.log.Warn("google places lookup failed", map[string]interface{}{"error": err})
	}

	if snap, ok := s.latestSnapshot(); ok {
		return GoogleReviews{
			Rating:       snap.Rating,
			ReviewCount:  snap.ReviewCount,
			BusinessName: snap.BusinessName,
			UpdatedAt:    snap.FetchedAt.UTC(),
			Source:       ReviewSourceSnapshot,
		}
	}

	return GoogleReviews{
		Rating:       DefaultReviewRating,
		ReviewCount:  DefaultReviewCount,
		BusinessName: DefaultReviewBusiness,
		UpdatedAt:    s.now().UTC(),
		Source:       ReviewSourceDefault,
	}
}

func (s *ReviewService) latestSnapshot() (*db.ReviewSnapshot, bool) {
	if s.db == nil {
		return nil, false
	}
	var snap db.ReviewSnapshot
	if err := s.db.Order("fetched_at desc, id desc").First(&snap).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("load review snapshot failed", map[string]interface{}{"error": err})
		}
		return nil, false
	}
	if snap.BusinessName == "" {
		snap.BusinessName = DefaultReviewBusiness
	}
	return &snap, true
}

// Sync copies the Google rating into the companyInfo document and keeps a
// local snapshot of it.
func (s *ReviewService) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.googleConfigured() || s.cms == nil {
		return nil, ErrReviewSyncUnavailable
	}

	reviews, err := s.fetchGoogle(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := db.ReviewSnapshot{
		BusinessName: reviews.BusinessName,
		Rating:       reviews.Rating,
		ReviewCount:  reviews.ReviewCount,
		FetchedAt:    reviews.UpdatedAt,
	}

	mutation, mutateErr := s.cms.Mutate(ctx, cms.Patch(cms.CompanyInfoDocumentID, map[string]any{
		"googleRating":  reviews.Rating,
		"googleReviews": reviews.ReviewCount,
	}))
	if errors.Is(mutateErr, cms.ErrNotConfigured) || errors.Is(mutateErr, cms.ErrTokenRequired) {
		return nil, ErrReviewSyncUnavailable
	}
	snapshot.CMSUpdated = mutateErr == nil

	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(&snapshot).Error; err != nil {
			s.log.Error("store review snapshot failed", map[string]interface{}{"error": err})
		}
	}

	if mutateErr != nil {
		return nil, fmt.Errorf("update cms rating: %w", mutateErr)
	}

	s.log.Info("google reviews synced", map[string]interface{}{
		"rating":       reviews.Rating,
		"review_count": reviews.ReviewCount,
	})
	return &SyncResult{
		Success:       true,
		Rating:        reviews.Rating,
		ReviewCount:   reviews.ReviewCount,
		TransactionID: mutation.TransactionID,
		Timestamp:     reviews.UpdatedAt,
	}, nil
}
