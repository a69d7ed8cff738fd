package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// genericErrMsg is surfaced when the server gives no usable message.
const genericErrMsg = "failed to reach the server"

// APIError is a structured failure from the back-office API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the HTTP gateway to the back-office API. Every request is
// stamped with the session's bearer token when one is live; otherwise it
// goes out unauthenticated.
type Client struct {
	origin  string
	httpc   *http.Client
	session *Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// NewClient creates a gateway for the given origin, e.g. "https://api.tably.app".
func NewClient(origin string, session *Session, opts ...Option) *Client {
	c := &Client{
		origin:  strings.TrimSuffix(origin, "/"),
		httpc:   http.DefaultClient,
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the gateway reads its credential from.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) url(path string) string {
	return c.origin + "/api/v1" + path
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("%s: %w", genericErrMsg, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", genericErrMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", genericErrMsg, err)
	}
	return nil
}

// decodeError lifts the server's {"message"} envelope into an APIError,
// falling back to the generic string when the field is absent.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: genericErrMsg}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	}

	return apiErr
}

// Login exchanges credentials for a bearer token and installs the session
// atomically: token and user are set together with a 24h expiry.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return User{}, err
	}

	var response struct {
		Token string `json:"token"`
		Data  struct {
			User User `json:"user"`
		} `json:"data"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(payload), "application/json", &response); err != nil {
		return User{}, err
	}

	c.session.Init(response.Token, response.Data.User)
	return response.Data.User, nil
}

// ListBanners fetches a tenant's screensaver playlist.
func (c *Client) ListBanners(ctx context.Context, restaurantID string) ([]Banner, error) {
	var banners []Banner
	err := c.do(ctx, http.MethodGet, "/screensaver/client/"+restaurantID, nil, "", &banners)
	return banners, err
}

// CreateBanner adds a banner to a tenant's screensaver rotation.
func (c *Client) CreateBanner(ctx context.Context, restaurantID, imageURL string, order int) (Banner, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"restaurant_id": restaurantID,
		"image_url":     imageURL,
		"order":         order,
	})
	if err != nil {
		return Banner{}, err
	}

	var banner Banner
	err = c.do(ctx, http.MethodPost, "/screensaver/client", bytes.NewReader(payload), "application/json", &banner)
	return banner, err
}

// DeleteBanner removes a banner by id.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/screensaver/client/"+id, nil, "", nil)
}

// PromotionPayload is the multipart promotion creation payload.
type PromotionPayload struct {
	RestaurantID  string
	Title         map[string]string
	DiscountType  DiscountType
	DiscountValue float64
	ActiveDays    []int
	StartTime     string
	EndTime       string
	ImageName     string
	Image         []byte
}

// CreatePromotion submits a promotion as one multipart request: title and
// activeDays are JSON-encoded fields, the image travels as a file part when
// present.
func (c *Client) CreatePromotion(ctx context.Context, payload PromotionPayload) (Promotion, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	title, err := json.Marshal(payload.Title)
	if err != nil {
		return Promotion{}, err
	}
	days, err := json.Marshal(payload.ActiveDays)
	if err != nil {
		return Promotion{}, err
	}

	fields := map[string]string{
		"title":         string(title),
		"discountType":  string(payload.DiscountType),
		"discountValue": strconv.FormatFloat(payload.DiscountValue, 'f', -1, 64),
		"startTime":     payload.StartTime,
		"endTime":       payload.EndTime,
		"activeDays":    string(days),
	}
	if payload.RestaurantID != "" {
		fields["restaurantId"] = payload.RestaurantID
	}
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return Promotion{}, err
		}
	}

	if payload.Image != nil {
		part, err := mw.CreateFormFile("image", payload.ImageName)
		if err != nil {
			return Promotion{}, err
		}
		if _, err := part.Write(payload.Image); err != nil {
			return Promotion{}, err
		}
	}

	if err := mw.Close(); err != nil {
		return Promotion{}, err
	}

	var promo Promotion
	err = c.do(ctx, http.MethodPost, "/marketing/promotions", &buf, mw.FormDataContentType(), &promo)
	return promo, err
}

// GetMenu fetches the category/subcategory/product tree.
func (c *Client) GetMenu(ctx context.Context) ([]MenuCategory, error) {
	var tree []MenuCategory
	err := c.do(ctx, http.MethodGet, "/menu", nil, "", &tree)
	return tree, err
}

// GetPlans fetches the plan catalog.
func (c *Client) GetPlans(ctx context.Context) (PlanCatalog, error) {
	var catalog PlanCatalog
	err := c.do(ctx, http.MethodGet, "/plans", nil, "", &catalog)
	return catalog, err
}

// CreateTenant performs the terminal onboarding creation call with the full
// aggregate.
func (c *Client) CreateTenant(ctx context.Context, payload TenantPayload) (Tenant, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Tenant{}, err
	}

	var tenant Tenant
	err = c.do(ctx, http.MethodPost, "/clients", bytes.NewReader(body), "application/json", &tenant)
	return tenant, err
}

// ListTenants fetches all client accounts for the admin table.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	err := c.do(ctx, http.MethodGet, "/clients", nil, "", &tenants)
	return tenants, err
}

// DeleteTenant removes a client account.
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, "", nil)
}
