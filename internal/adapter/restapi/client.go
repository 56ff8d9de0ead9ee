package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

// DefaultBaseURL is the products resource of a local backend.
const DefaultBaseURL = "http://localhost:8080/api/producto"

var ErrInvalidBaseURL = errors.New("invalid base URL")

// A StatusError is returned for non 2xx responses.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

var _ port.ProductsAPI = (*Client)(nil)

type Opt func(*Client) error

// HTTPClientOpt replaces [http.DefaultClient].
func HTTPClientOpt(hc *http.Client) Opt {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.hc = hc
		return nil
	}
}

// TimeoutOpt bounds every request. Zero means no timeout.
func TimeoutOpt(d time.Duration) Opt {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("negative timeout")
		}
		c.timeout = d
		return nil
	}
}

// A Client consumes the remote products resource:
//
//	GET    {base}       list
//	POST   {base}       create
//	PUT    {base}/{id}  update
//	DELETE {base}/{id}  delete
type Client struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
}

func New(baseURL string, opts ...Opt) (*Client, error) {
	const op = "restapi.New"

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return c, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.ListProducts"

	var vs []product
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &vs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, len(vs))
	for i, v := range vs {
		ps[i] = v.toDomain()
	}
	return ps, nil
}

func (c *Client) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Client.CreateProduct"

	var v product
	err := c.do(ctx, http.MethodPost, c.baseURL, fromDomain(p), &v)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return v.toDomain(), nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Client.UpdateProduct"

	var v product
	err := c.do(ctx, http.MethodPut, c.productURL(p.ID), fromDomain(p), &v)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return v.toDomain(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	const op = "Client.DeleteProduct"

	err := c.do(ctx, http.MethodDelete, c.productURL(id), nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) productURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

// do sends in as JSON body when it's not nil
// and decodes the response into out when it's not nil.
func (c *Client) do(
	ctx context.Context, method, target string, in, out any,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Method: method, URL: target, Code: res.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
