package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shebacare/config"
	"shebacare/models"
	"shebacare/services/matching"
	"shebacare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchingHandler serves the matching endpoints.
type MatchingHandler struct {
	Svc    matching.MatchingService
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewMatchingHandler creates a matching handler.
func NewMatchingHandler(svc matching.MatchingService, cache *redis.Client, logger *zap.Logger) *MatchingHandler {
	return &MatchingHandler{Svc: svc, Cache: cache, Logger: logger}
}

type matchResponse struct {
	Success         bool                 `json:"success"`
	Matches         []models.MatchResult `json:"matches"`
	TotalCaregivers int                  `json:"total_caregivers"`
	Query           models.MatchRequest  `json:"query"`
	Timestamp       string               `json:"timestamp"`
	RequestID       string               `json:"request_id"`
}

// FindMatchesHandler ranks caregivers for a senior's request.
func (h *MatchingHandler) FindMatchesHandler(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	requestID := uuid.New().String()
	cacheKey, cacheable := matchCacheKey(req)

	if cacheable && h.Cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		defer cancel()
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp matchResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				resp.RequestID = requestID
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	matches, err := h.Svc.Match(req)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidRequest) {
			utils.JSONError(c, http.StatusBadRequest, "invalid match request", err.Error())
			return
		}
		h.Logger.Error("matching failed", zap.String("requestID", requestID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "matching failed", err.Error())
		return
	}

	resp := matchResponse{
		Success:         true,
		Matches:         matches,
		TotalCaregivers: h.Svc.Stats().TotalCaregivers,
		Query:           req,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		RequestID:       requestID,
	}

	if cacheable && h.Cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := h.Cache.Set(ctx, cacheKey, payload, cacheTTL()).Err(); err != nil {
				h.Logger.Warn("failed to cache match response", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type statsResponse struct {
	Success   bool                 `json:"success"`
	Stats     models.MatchingStats `json:"stats"`
	Timestamp string               `json:"timestamp"`
}

const statsCacheKey = "match:stats"

// StatsHandler returns dataset sizes and the scoring-weight table.
// Responses are cached briefly since the dataset only changes on reload.
func (h *MatchingHandler) StatsHandler(c *gin.Context) {
	if h.Cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		defer cancel()
		if cached, err := h.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var resp statsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp := statsResponse{
		Success:   true,
		Stats:     h.Svc.Stats(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := h.Cache.Set(ctx, statsCacheKey, payload, cacheTTL()).Err(); err != nil {
				h.Logger.Warn("failed to cache stats response", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// cacheTTL returns the configured response-cache TTL with a sane floor.
func cacheTTL() time.Duration {
	ttl := time.Duration(config.AppConfig.MatchCacheTTLSecs) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return ttl
}

// matchCacheKey derives a stable cache key from the request. Requests
// without an explicit booking date depend on "today" and are not cached.
func matchCacheKey(req models.MatchRequest) (string, bool) {
	if req.BookingDate == "" {
		return "", false
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(payload)
	return "match:" + hex.EncodeToString(sum[:]), true
}
