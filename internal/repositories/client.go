package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 8 << 20

// Client talks JSON to the catalogue/cart backend. Nothing here retries; callers surface
// failures and the user re-submits.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Repositories bundles every backend resource.
type Repositories struct {
	Product  ProductRepository
	Category CategoryRepository
	Cart     CartRepository
	Wishlist WishlistRepository
	Coupon   CouponRepository
	Review   ReviewRepository
}

func New(client *Client) *Repositories {
	return &Repositories{
		Product:  NewProductRepo(client),
		Category: NewCategoryRepo(client),
		Cart:     NewCartRepo(client),
		Wishlist: NewWishlistRepo(client),
		Coupon:   NewCouponRepo(client),
		Review:   NewReviewRepo(client),
	}
}

// Ping issues a cheap read; used by the health check.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/categories", nil, nil)
}

type backendMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode backend request").WithError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart forwards form fields and image parts untouched.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields [][2]string, files []models.FilePart, out any) error {

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return errors.InternalError("Failed to encode form field").WithError(err)
		}
	}

	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return errors.InternalError("Failed to encode upload").WithError(err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return errors.InternalError("Failed to encode upload").WithError(err)
		}
	}

	if err := w.Close(); err != nil {
		return errors.InternalError("Failed to encode form").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return errors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NetworkError("Backend is unreachable").WithError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.NetworkError("Failed to read backend response").WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(req, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.NetworkError("Backend returned an unreadable response").WithError(err)
	}

	return nil
}

func statusError(req *http.Request, status int, body []byte) error {

	var msg backendMessage
	_ = json.Unmarshal(body, &msg)

	message := msg.Message
	if message == "" {
		message = msg.Error
	}

	detail := fmt.Sprintf("%s %s responded %d", req.Method, req.URL.Path, status)

	var appErr *errors.AppError
	switch {
	case status == http.StatusNotFound:
		appErr = errors.NotFoundError(orDefault(message, "Resource not found"))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		appErr = errors.ValidationError(orDefault(message, "Request rejected by backend"))
	case status == http.StatusUnauthorized:
		appErr = errors.AuthRequiredError(orDefault(message, "Authentication required"))
	case status == http.StatusForbidden:
		appErr = errors.ForbiddenError(orDefault(message, "Access denied"))
	default:
		appErr = errors.NetworkError(orDefault(message, "Backend request failed"))
	}

	return appErr.WithDetail(detail)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
