package market

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/exportscout/exportscout/internal/model"
)

// subscriptionKeyHeader carries the Comtrade API credential.
const subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// ComtradeClient queries the UN Comtrade public preview API for annual
// total-trade data over a fixed historical window.
type ComtradeClient struct {
	// client is the resty HTTP client, pre-configured with the base URL,
	// timeout, and subscription key header.
	client *resty.Client

	// periodStart and periodEnd bound the queried window (years).
	periodStart int
	periodEnd   int

	// maxRows caps the returned table.
	maxRows int
}

// ComtradeOption configures a ComtradeClient.
type ComtradeOption func(*ComtradeClient)

// WithPeriod overrides the queried historical window.
func WithPeriod(start, end int) ComtradeOption {
	return func(c *ComtradeClient) {
		c.periodStart = start
		c.periodEnd = end
	}
}

// WithMaxRows caps the returned market table. Default is 5.
func WithMaxRows(n int) ComtradeOption {
	return func(c *ComtradeClient) {
		if n > 0 {
			c.maxRows = n
		}
	}
}

// NewComtradeClient creates a client for the given API base URL and
// subscription key. The timeout bounds each request; the client never
// retries a failed query.
func NewComtradeClient(endpoint, apiKey string, timeout time.Duration, opts ...ComtradeOption) *ComtradeClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader(subscriptionKeyHeader, apiKey)

	c := &ComtradeClient{
		client:      client,
		periodStart: 2010,
		periodEnd:   2022,
		maxRows:     5,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// comtradeResponse mirrors the subset of the preview API response we use.
type comtradeResponse struct {
	Data []comtradeEntry `json:"data"`
}

// comtradeEntry is one result row from the preview API.
type comtradeEntry struct {
	// PartnerTitle is the partner country name.
	PartnerTitle string `json:"ptTitle"`

	// ReporterDescription is the flow description label. Despite the name
	// the report gives it, this is not a numeric score; see
	// model.MarketRow.
	ReporterDescription string `json:"rgDesc"`
}

// FetchMarkets queries the preview API for the term and maps the first
// maxRows entries to market rows. Missing upstream fields become "N/A".
// Any network, auth, or decode failure is returned as an error.
func (c *ComtradeClient) FetchMarkets(ctx context.Context, term string) ([]model.MarketRow, error) {
	var result comtradeResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("fmt", "json").
		SetResult(&result).
		Get(fmt.Sprintf("/C/A/%d/%d/TOTAL/%s", c.periodStart, c.periodEnd, url.PathEscape(term)))
	if err != nil {
		return nil, fmt.Errorf("comtrade query for %q failed: %w", term, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("comtrade query for %q returned status %s", term, resp.Status())
	}

	rows := make([]model.MarketRow, 0, c.maxRows)
	for _, entry := range result.Data {
		if len(rows) >= c.maxRows {
			break
		}

		country := entry.PartnerTitle
		if country == "" {
			country = model.MarketFieldNA
		}
		score := entry.ReporterDescription
		if score == "" {
			score = model.MarketFieldNA
		}

		rows = append(rows, model.MarketRow{Country: country, DemandScore: score})
	}

	return rows, nil
}
