package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader    = "Idempotency-Key"
	idempotencyKeyPrefix = "idempotency:"

	// The checkout widget may retry a verify-payment POST for a day's
	// worth of browser sessions; replays beyond that get a fresh attempt.
	idempotencyTTL = 24 * time.Hour
)

// storedResponse is the replayable outcome of an earlier attempt.
type storedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
	Headers    http.Header     `json:"headers"`
}

// responseRecorder wraps gin.ResponseWriter to capture the body as it is
// written, so the outcome can be replayed on a retry.
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a mutating request
// repeats an Idempotency-Key. This protects double-submitted registrations
// and payment actions at the transport level; the payment core's own
// invariants never depend on it.
func IdempotencyMiddleware(redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		// Scoped by method and route so reusing one key across, say,
		// POST /v1/teams and POST /v1/payments never replays the wrong body.
		storeKey := idempotencyKeyPrefix + c.Request.Method + ":" + c.FullPath() + ":" + key

		stored, err := getStoredResponse(ctx, redisClient, storeKey)
		if err != nil && err != redis.Nil {
			// Degraded Redis never blocks the request itself.
			c.Next()
			return
		}

		if stored != nil {
			for k, v := range stored.Headers {
				for _, val := range v {
					c.Header(k, val)
				}
			}
			c.Data(stored.StatusCode, "application/json", stored.Body)
			c.Abort()
			return
		}

		w := &responseRecorder{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// 5xx outcomes are not stored: the client should get a real retry.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 500 {
			response := storedResponse{
				StatusCode: c.Writer.Status(),
				Body:       w.body.Bytes(),
				Headers:    replayableHeaders(c),
			}
			_ = setStoredResponse(ctx, redisClient, storeKey, &response, idempotencyTTL)
		}
	}
}

func getStoredResponse(ctx context.Context, client *redis.Client, key string) (*storedResponse, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var stored storedResponse
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

func setStoredResponse(ctx context.Context, client *redis.Client, key string, response *storedResponse, ttl time.Duration) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, data, ttl).Err()
}

// replayableHeaders picks the headers worth storing. Only Content-Type;
// everything else is request-specific.
func replayableHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
		headers.Set("Content-Type", ct)
	}
	return headers
}
