package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

const (
	instrumentationName   = "github.com/auctionsniper/ebay-relay/internal/ebay"
	defaultRequestTimeout = 10 * time.Second
)

var (
	tracer = otel.Tracer(instrumentationName)

	requestDuration, _ = otel.Meter(instrumentationName).Float64Histogram( //nolint:errcheck // noop instrument on error
		"ebay.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of eBay API calls."),
	)
)

// NewHTTPClient returns a client with an explicit timeout and a traced
// transport.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// getJSON issues a bearer-authenticated GET and decodes a 2xx JSON body into
// dst. It holds no state: the token is supplied per call. Non-2xx responses
// are returned as *APIError.
func getJSON(
	ctx context.Context,
	hc *http.Client,
	api string,
	rawURL string,
	token string,
	headers map[string]string,
	dst any,
) error {
	ctx, span := tracer.Start(ctx, "ebay."+api, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", api, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		metrics.EbayAPICallsTotal.WithLabelValues(api, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return fmt.Errorf("executing %s request: %w", api, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", api, err)
	}

	elapsed := time.Since(start).Seconds()
	metrics.EbayAPIDuration.WithLabelValues(api).Observe(elapsed)
	metrics.EbayAPICallsTotal.WithLabelValues(api, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.Record(ctx, elapsed, metric.WithAttributes(
		attribute.String("ebay.api", api),
		attribute.Int("http.response.status_code", resp.StatusCode),
	))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing %s response: %w", api, err)
	}

	return nil
}
