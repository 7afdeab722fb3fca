package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"lingorelay/internal/cache"
	apperrors "lingorelay/internal/errors"
)

const (
	translateTimeout  = 30 * time.Second
	translateCacheTTL = time.Hour
	// maxRelayBody bounds what we are willing to buffer from the upstream.
	maxRelayBody = 1 << 20
)

// TranslateService forwards completion requests to the upstream API verbatim
// and hands back the upstream's response untouched.
type TranslateService interface {
	Relay(ctx context.Context, payload []byte) (status int, body []byte, err error)
}

type translateService struct {
	apiURL string
	apiKey string
	client *http.Client
	cache  *cache.Client
}

// NewTranslateService creates a new translation relay. The client timeout is
// deliberate: the upstream is the only slow dependency in the system.
func NewTranslateService(apiURL, apiKey string, cache *cache.Client) TranslateService {
	return &translateService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: translateTimeout},
		cache:  cache,
	}
}

func (s *translateService) cacheKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "translate:" + hex.EncodeToString(sum[:])
}

// Relay posts the payload to the upstream completion API. Successful responses
// are cached by payload hash, since identical texts recur.
func (s *translateService) Relay(ctx context.Context, payload []byte) (int, []byte, error) {
	key := s.cacheKey(payload)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		return http.StatusOK, data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("translate: upstream call failed: %v", err)
		return 0, nil, apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayBody))
	if err != nil {
		log.Printf("translate: reading upstream response failed: %v", err)
		return 0, nil, apperrors.ErrUpstreamUnavailable
	}

	if resp.StatusCode == http.StatusOK && json.Valid(body) {
		_ = s.cache.Set(ctx, key, body, translateCacheTTL)
	}
	return resp.StatusCode, body, nil
}
