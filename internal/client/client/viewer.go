package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/netx"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
)

// APIError is a non-2xx answer of the REST endpoint.
type APIError struct {
	StatusCode int
	Message    string

	// Set when an allow-list refused the viewer.
	CanRequestAccess bool
	RequestStatus    string
	CanRequestAgain  bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrRejected:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnavailable:
		return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
	}
	return false
}

// Disclosure is what a successful verification returns.
type Disclosure struct {
	Message            string            `json:"message"`
	ImageURL           string            `json:"image_url"`
	AllowDownload      bool              `json:"allow_download"`
	ProtectionFeatures pipeline.Features `json:"protection_features"`
	ViewerTicket       string            `json:"viewer_ticket"`
}

// ViewerClient drives the public access flow of one shared link.
type ViewerClient struct {
	baseURL string
	http    *http.Client
}

func NewViewerClient(baseURL string, c *http.Client) *ViewerClient {
	return &ViewerClient{baseURL: strings.TrimRight(baseURL, "/"), http: c}
}

func (v *ViewerClient) endpoint(token, action string) string {
	return fmt.Sprintf("%s/api/v1/access/%s/%s", v.baseURL, url.PathEscape(token), action)
}

// Initiate starts a session. requiresPassword is true when the grant wants a
// password and none (or an empty one) was sent; otherwise a code was mailed.
func (v *ViewerClient) Initiate(ctx context.Context, token, email, password string) (requiresPassword bool, err error) {
	resp, err := netx.PostJSON(ctx, v.http, v.endpoint(token, "initiate"), map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.OK() {
		return false, apiError(resp)
	}
	var body struct {
		RequiresPassword bool `json:"requires_password"`
	}
	if err := resp.Decode(&body); err != nil {
		return false, err
	}
	return body.RequiresPassword, nil
}

func (v *ViewerClient) Verify(ctx context.Context, token, email, code string) (*Disclosure, error) {
	resp, err := netx.PostJSON(ctx, v.http, v.endpoint(token, "verify"), map[string]string{
		"email": email,
		"otp":   code,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.OK() {
		return nil, apiError(resp)
	}
	var d Disclosure
	if err := resp.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Request asks the owner for access and returns the request status the
// server reports. A pending duplicate is reported, not failed.
func (v *ViewerClient) Request(ctx context.Context, token, email, message string) (string, error) {
	resp, err := netx.PostJSON(ctx, v.http, v.endpoint(token, "request"), map[string]string{
		"email":   email,
		"message": message,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	var body struct {
		RequestStatus string `json:"request_status"`
	}
	if resp.OK() || resp.StatusCode == http.StatusForbidden {
		if err := resp.Decode(&body); err == nil && body.RequestStatus != "" {
			return body.RequestStatus, nil
		}
	}
	return "", apiError(resp)
}

// Fetch reads the image a disclosure points to.
func (v *ViewerClient) Fetch(ctx context.Context, d *Disclosure) (*netx.Response, error) {
	return v.get(ctx, d.ImageURL, nil)
}

// Download fetches the attachment. email is sent as the viewer identity
// header when set.
func (v *ViewerClient) Download(ctx context.Context, token, email, ticket string) (*netx.Response, error) {
	u := v.endpoint(token, "download")
	if ticket != "" {
		u += "?ticket=" + url.QueryEscape(ticket)
	}
	h := http.Header{}
	if email != "" {
		h.Set(common.ViewerEmailHeaderName, email)
	}
	return v.get(ctx, u, h)
}

func (v *ViewerClient) get(ctx context.Context, u string, h http.Header) (*netx.Response, error) {
	resp, err := netx.Get(ctx, v.http, u, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.OK() {
		return nil, apiError(resp)
	}
	return resp, nil
}

func apiError(resp *netx.Response) error {
	var body struct {
		Error            string `json:"error"`
		Message          string `json:"message"`
		CanRequestAccess bool   `json:"can_request_access"`
		RequestStatus    string `json:"request_status"`
		CanRequestAgain  bool   `json:"can_request_again"`
	}
	e := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	if err := resp.Decode(&body); err == nil {
		switch {
		case body.Message != "":
			e.Message = body.Message
		case body.Error != "":
			e.Message = body.Error
		}
		e.CanRequestAccess = body.CanRequestAccess
		e.RequestStatus = body.RequestStatus
		e.CanRequestAgain = body.CanRequestAgain
	}
	return e
}
