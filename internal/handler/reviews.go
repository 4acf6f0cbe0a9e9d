package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/service"
)

// GetGoogleReviews returns the current rating summary.
func (a *API) GetGoogleReviews(c *gin.Context) {
	if a.reviews == nil {
		c.JSON(http.StatusOK, service.GoogleReviews{
			Rating:       service.DefaultReviewRating,
			ReviewCount:  service.DefaultReviewCount,
			BusinessName: service.DefaultReviewBusiness,
			UpdatedAt:    a.now().UTC(),
			Source:       service.ReviewSourceDefault,
		})
		return
	}
	c.JSON(http.StatusOK, a.reviews.Current(c.Request.Context()))
}

// SyncReviews is the cron target. When CRON_SECRET is set the request must
// carry it as a bearer token.
func (a *API) SyncReviews(c *gin.Context) {
	if secret := strings.TrimSpace(a.opts.CronSecret); secret != "" {
		got := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
	}
	if a.reviews == nil {
		respondError(c, http.StatusServiceUnavailable, service.ErrReviewSyncUnavailable.Error())
		return
	}

	result, err := a.reviews.Sync(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrReviewSyncUnavailable) {
			respondError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
