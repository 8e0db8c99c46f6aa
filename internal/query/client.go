// Package query implements the client for the downstream query service.
// Valid MTB files are forwarded here; deletions are propagated. The client
// wraps the HTTP transport with a circuit breaker, client-side rate
// limiting and an idempotency cache for repeated uploads.
package query

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/mtb-intake-service/internal/domain"
)

// Config holds the query-service client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit int // requests per second
}

// Client talks to the query service. It implements domain.QueryService.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	dedup      IdempotencyCache
	log        *logrus.Logger
}

// NewClient creates a query-service client. dedup may be nil to disable
// upload deduplication.
func NewClient(cfg Config, dedup IdempotencyCache, logger *logrus.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("query service base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid query service base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 10
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "QueryService",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		breaker:    breaker,
		dedup:      dedup,
		log:        logger,
	}, nil
}

// Upload forwards a validated MTB file. Re-uploads of a byte-identical
// file for the same patient are acknowledged without a second request.
func (c *Client) Upload(ctx context.Context, file *domain.MTBFile) error {
	body, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding MTB file: %w", err)
	}

	patient := file.Patient.ID.String()
	digest := contentDigest(body)
	if c.dedup != nil && c.dedup.Seen(ctx, patient, digest) {
		c.log.WithField("patient", patient).Debug("Identical MTB file already forwarded, skipping")
		return nil
	}

	if err := c.do(ctx, http.MethodPost, "/api/mtbfile", body); err != nil {
		return err
	}

	if c.dedup != nil {
		c.dedup.Remember(ctx, patient, digest)
	}
	return nil
}

// Delete instructs the query service to remove all data of a patient.
func (c *Client) Delete(ctx context.Context, patient domain.PatientID) error {
	path := "/api/mtbfile/" + url.PathEscape(patient.String())
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("query service responded %d: %s", resp.StatusCode, payload)
		}
		return nil, nil
	})

	if err == gobreaker.ErrOpenState {
		return fmt.Errorf("query service unavailable (circuit breaker open)")
	}
	return err
}

func contentDigest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
