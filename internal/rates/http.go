package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tricalc/internal/domain"
)

// HTTP fetches rate tables from URL.
type HTTP struct {
	URL  string
	HTTP *http.Client
}

// NewHTTP returns a client for url. A nil client means http.DefaultClient.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{URL: url, HTTP: client}
}

// FetchRates downloads and validates one rate table.
func (c *HTTP) FetchRates(ctx context.Context) (domain.RateTable, error) {
	var p payload
	if err := c.getJSON(ctx, &p); err != nil {
		return domain.RateTable{}, err
	}
	t, err := p.table(time.Now())
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("rates get %s: %w", c.URL, err)
	}
	return t, nil
}

func (c *HTTP) getJSON(ctx context.Context, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("rates get %s: %s", c.URL, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rates get %s: %w: %v", c.URL, ErrMalformedPayload, err)
	}
	return nil
}

var _ domain.RateSource = (*HTTP)(nil)
