package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

const productsPath = "/products"

// Client issues requests to the catalog service's REST API. Both suites use
// it: the HTTP contract suite for its assertions, and the UI suite to reset
// and seed the service's store before each scenario.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Response is the relevant parts of an HTTP response, as encoded data. The
// decode helpers interpret the body on demand; assertions are made against
// these values, never against live objects.
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	Location string
}

// DecodeProduct parses the body as a single product.
func (r Response) DecodeProduct() (Product, error) {
	var p Product
	if err := json.Unmarshal(r.Body, &p); err != nil {
		return Product{}, fmt.Errorf("malformed product payload %q: %w", string(r.Body), err)
	}
	return p, nil
}

// DecodeProducts parses the body as a list of products.
func (r Response) DecodeProducts() ([]Product, error) {
	var ps []Product
	if err := json.Unmarshal(r.Body, &ps); err != nil {
		return nil, fmt.Errorf("malformed product list payload %q: %w", string(r.Body), err)
	}
	return ps, nil
}

// Message returns the human-readable message field of an error or status
// payload, or an empty string if there is none.
func (r Response) Message() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// ProductFilter holds the query parameters of a list request. Each field is
// optional; Available is the raw query token, since sending an unparseable
// value is itself part of the contract under test.
type ProductFilter struct {
	Name      ldvalue.OptionalString
	Category  ldvalue.OptionalString
	Available ldvalue.OptionalString
}

func (f ProductFilter) query() string {
	values := url.Values{}
	if s, ok := f.Name.Get(); ok {
		values.Set("name", s)
	}
	if s, ok := f.Category.Get(); ok {
		values.Set("category", s)
	}
	if s, ok := f.Available.Get(); ok {
		values.Set("available", s)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// WaitUntilAvailable polls the service's health resource until it responds
// with a 200, writing progress dots to output like the harness startup
// banner, or fails after the timeout.
func (c *Client) WaitUntilAvailable(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to catalog service at %s", c.baseURL)
	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		fmt.Fprintf(output, ".")
		resp, err := c.Health()
		if err == nil && resp.Status == http.StatusOK {
			fmt.Fprintln(output)
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("health check returned status %d", resp.Status)
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out waiting for catalog service: %w", lastErr)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

// Index fetches the root page of the service.
func (c *Client) Index() (Response, error) {
	return c.do("GET", "/", "", nil)
}

// Health fetches the service's health resource.
func (c *Client) Health() (Response, error) {
	return c.do("GET", "/health", "", nil)
}

// CreateProduct posts the given payload as JSON to the products resource.
func (c *Client) CreateProduct(payload interface{}) (Response, error) {
	return c.doJSON("POST", productsPath, payload)
}

// CreateProductRaw posts an arbitrary body with an arbitrary content type,
// for content-type negotiation tests.
func (c *Client) CreateProductRaw(contentType string, body []byte) (Response, error) {
	return c.do("POST", productsPath, contentType, body)
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(id int) (Response, error) {
	return c.do("GET", fmt.Sprintf("%s/%d", productsPath, id), "", nil)
}

// GetPath fetches an arbitrary path or absolute URL, such as the value of a
// Location header.
func (c *Client) GetPath(pathOrURL string) (Response, error) {
	return c.do("GET", pathOrURL, "", nil)
}

// UpdateProduct puts the given payload as JSON to a product resource.
func (c *Client) UpdateProduct(id int, payload interface{}) (Response, error) {
	return c.doJSON("PUT", fmt.Sprintf("%s/%d", productsPath, id), payload)
}

// UpdateProductRaw puts an arbitrary body with an arbitrary content type.
func (c *Client) UpdateProductRaw(id int, contentType string, body []byte) (Response, error) {
	return c.do("PUT", fmt.Sprintf("%s/%d", productsPath, id), contentType, body)
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(id int) (Response, error) {
	return c.do("DELETE", fmt.Sprintf("%s/%d", productsPath, id), "", nil)
}

// ListProducts fetches the product list, optionally filtered.
func (c *Client) ListProducts(filter ProductFilter) (Response, error) {
	return c.do("GET", productsPath+filter.query(), "", nil)
}

// DeleteAllProducts removes every product, so each test case starts from an
// empty store. The harness has no direct access to the service's database;
// it can only reset through the API.
func (c *Client) DeleteAllProducts() error {
	resp, err := c.ListProducts(ProductFilter{})
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("list request during reset returned status %d", resp.Status)
	}
	products, err := resp.DecodeProducts()
	if err != nil {
		return err
	}
	for _, p := range products {
		if _, err := c.DeleteProduct(p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) doJSON(method, path string, payload interface{}) (Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}
	return c.do(method, path, "application/json", data)
}

func (c *Client) do(method, pathOrURL, contentType string, body []byte) (Response, error) {
	url := pathOrURL
	if !strings.HasPrefix(url, "http:") && !strings.HasPrefix(url, "https:") {
		url = c.baseURL + pathOrURL
	}
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return Response{}, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.logger.Printf("%s %s %s", method, url, string(body))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	c.logger.Printf("got %d %s", resp.StatusCode, string(respBody))
	return Response{
		Status:   resp.StatusCode,
		Header:   resp.Header,
		Body:     respBody,
		Location: resp.Header.Get("Location"),
	}, nil
}
