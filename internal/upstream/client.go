package upstream

import (
	"context"
	"fmt"
	"guildpreview/internal/models"
	"guildpreview/internal/providers"
	"guildpreview/internal/structures"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// maxResponseBodySize bounds how much of a template body is read. Real
// templates are a few hundred KB at most.
const maxResponseBodySize = 8 << 20

type ClientInterface interface {
	FetchTemplate(ctx context.Context, templateID string) (*models.Template, error)
}

// Client talks to the Discord template endpoint. Each FetchTemplate is a
// single GET; the limiter only spaces calls out, it never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) ClientInterface {
	limit := rate.Inf
	if conf.Upstream.RateLimit > 0 {
		limit = rate.Limit(conf.Upstream.RateLimit)
	}
	burst := max(conf.Upstream.Burst, 1)

	return &Client{
		httpClient: &http.Client{Timeout: conf.Upstream.Timeout},
		baseURL:    strings.TrimRight(conf.Upstream.BaseUrl, "/"),
		userAgent:  conf.Upstream.UserAgent,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
		metrics:    metrics,
	}
}

func (c *Client) templateURL(templateID string) string {
	return c.baseURL + "/guilds/templates/" + url.PathEscape(templateID)
}

func (c *Client) FetchTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for upstream slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.templateURL(templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("build template request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveUpstreamDuration(time.Since(start))
	if err != nil {
		c.metrics.IncUpstreamRequests(0)
		c.logger.Errorf(providers.TypeUpstream, "GET template %s failed: %s", templateID, err)
		return nil, fmt.Errorf("fetch template %s: %w", templateID, err)
	}
	defer resp.Body.Close()

	c.metrics.IncUpstreamRequests(resp.StatusCode)
	c.logger.Debugf(providers.TypeUpstream, "GET template %s -> %d in %s", templateID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		c.logger.Warnf(providers.TypeUpstream, "template %s: upstream status %d", templateID, resp.StatusCode)
		return nil, &models.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", templateID, err)
	}

	tpl, err := DecodeTemplate(body)
	if err != nil {
		c.logger.Errorf(providers.TypeUpstream, "template %s: %s", templateID, err)
		return nil, err
	}
	return tpl, nil
}
