package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultEndpointURL = "https://api.airtable.com"

var ErrMissingCredentials = errors.New("airtable credentials are not configured")

type Credentials struct {
	EndpointURL string
	AccessToken string
	BaseID      string
	TableName   string
}

func (c Credentials) validate() error {
	var missing []string
	if c.AccessToken == "" {
		missing = append(missing, "access token")
	}
	if c.BaseID == "" {
		missing = append(missing, "base id")
	}
	if c.TableName == "" {
		missing = append(missing, "table name")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingCredentials, "missing %s", strings.Join(missing, ", "))
	}
	return nil
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one Airtable table. Credentials are checked per request so a
// misconfigured process still starts and reports failures through the callers.
type Client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	credentials Credentials
}

func NewClient(credentials Credentials) *Client {
	if credentials.EndpointURL == "" {
		credentials.EndpointURL = DefaultEndpointURL
	}
	credentials.EndpointURL = strings.TrimSuffix(credentials.EndpointURL, "/")
	return &Client{httpClient: &http.Client{}, credentials: credentials}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	if maxRequestsPerSecond <= 0 {
		c.rateLimiter = nil
		return
	}
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) TableName() string {
	return c.credentials.TableName
}

// ListRecords follows the offset cursor until the table is exhausted.
func (c *Client) ListRecords(ctx context.Context, parameters ListParameters) ([]Record, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if err := c.credentials.validate(); err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	for {
		page, err := c.listPage(ctx, parameters)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if page.Offset == "" {
			break
		}
		parameters.Offset = page.Offset
	}

	return records, nil
}

func (c *Client) listPage(ctx context.Context, parameters ListParameters) (listRecordsResponse, error) {

	apiURL := c.tableURL() + "?" + parameters.ToUrlParams().Encode()

	body, err := c.sendRequest(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return listRecordsResponse{}, err
	}

	var response listRecordsResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return listRecordsResponse{}, fmt.Errorf("error decoding JSON response: %w", err)
	}

	return response, nil
}

func (c *Client) GetRecord(ctx context.Context, id string) (Record, error) {

	if err := c.credentials.validate(); err != nil {
		return Record{}, err
	}

	if id == "" {
		return Record{}, errors.Wrap(ErrNotFound, "empty record id")
	}

	body, err := c.sendRequest(ctx, http.MethodGet, c.tableURL()+"/"+url.PathEscape(id), nil)
	if err != nil {
		return Record{}, err
	}

	var record Record
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&record); err != nil {
		return Record{}, fmt.Errorf("error decoding JSON response: %w", err)
	}

	return record, nil
}

func (c *Client) tableURL() string {
	return c.credentials.EndpointURL + "/v0/" +
		url.PathEscape(c.credentials.BaseID) + "/" +
		url.PathEscape(c.credentials.TableName)
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "error creating request")
	}
	req.Header.Set("Authorization", "Bearer "+c.credentials.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error sending request")
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}
