package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
)

const maxBodyBytes = 64 << 10

type initiateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type initiateResponse struct {
	Message          string `json:"message"`
	RequiresPassword bool   `json:"requires_password,omitempty"`
}

// authorizationResponse tells a viewer outside the allow-list what they can
// do next.
type authorizationResponse struct {
	Error            string `json:"error"`
	Code             int    `json:"code"`
	CanRequestAccess bool   `json:"can_request_access,omitempty"`
	RequestStatus    string `json:"request_status,omitempty"`
	CanRequestAgain  bool   `json:"can_request_again,omitempty"`
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyResponse struct {
	Message            string            `json:"message"`
	ImageURL           string            `json:"image_url"`
	AllowDownload      bool              `json:"allow_download"`
	ProtectionFeatures pipeline.Features `json:"protection_features"`
	ViewerTicket       string            `json:"viewer_ticket"`
}

type accessRequestBody struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type accessRequestResponse struct {
	Message       string `json:"message"`
	RequestStatus string `json:"request_status"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", common.ErrValidation)
	}
	return nil
}

// clientInfo collects the request origin. Geo headers are set by the edge
// proxy when there is one.
func clientInfo(r *http.Request) services.ClientInfo {
	return services.ClientInfo{
		IP:      clientIP(r),
		Country: r.Header.Get("CF-IPCountry"),
		Region:  r.Header.Get("X-Geo-Region"),
		City:    r.Header.Get("X-Geo-City"),
	}
}

func (s *Server) handleInitiate(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	res, err := s.access.Initiate(r.Context(), chi.URLParam(r, "token"), req.Email, req.Password, clientInfo(r))
	if err != nil {
		var authErr *services.AuthorizationError
		if errors.As(err, &authErr) {
			writeJSON(w, authorizationBody(authErr), http.StatusForbidden)
			return
		}
		s.handleError(w, r, err)
		return
	}

	if res.RequiresPassword {
		writeJSON(w, initiateResponse{Message: "Password required", RequiresPassword: true}, http.StatusOK)
		return
	}
	writeJSON(w, initiateResponse{Message: "OTP sent successfully"}, http.StatusOK)
}

func authorizationBody(e *services.AuthorizationError) authorizationResponse {
	resp := authorizationResponse{Code: http.StatusForbidden}
	switch e.Reason {
	case services.ReasonPending:
		resp.Error = "Your access request is pending approval"
		resp.RequestStatus = "pending"
	case services.ReasonDenied:
		resp.Error = "Your access request was denied"
		resp.RequestStatus = "denied"
		resp.CanRequestAgain = true
	default:
		resp.Error = "Email not authorized"
		resp.CanRequestAccess = true
	}
	return resp
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	d, err := s.access.Verify(r.Context(), chi.URLParam(r, "token"), req.Email, req.OTP, clientInfo(r))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, verifyResponse{
		Message:            "Access granted",
		ImageURL:           d.URL,
		AllowDownload:      d.AllowDownload,
		ProtectionFeatures: d.Features,
		ViewerTicket:       d.ViewerTicket,
	}, http.StatusOK)
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	var req accessRequestBody
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	outcome, err := s.access.Request(r.Context(), chi.URLParam(r, "token"), req.Email, req.Message)
	switch {
	case errors.Is(err, common.ErrRequestPending):
		writeJSON(w, accessRequestResponse{Message: "Your access request is already pending", RequestStatus: "pending"}, http.StatusForbidden)
		return
	case err != nil:
		s.handleError(w, r, err)
		return
	}

	switch outcome {
	case services.RequestAlreadyApproved:
		writeJSON(w, accessRequestResponse{Message: "Your access has already been approved", RequestStatus: "approved"}, http.StatusOK)
	case services.RequestResubmitted:
		writeJSON(w, accessRequestResponse{Message: "New access request submitted successfully", RequestStatus: "pending"}, http.StatusCreated)
	default:
		writeJSON(w, accessRequestResponse{Message: "Access request submitted successfully", RequestStatus: "pending"}, http.StatusCreated)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	c, err := s.access.Image(r.Context(), chi.URLParam(r, "token"), r.URL.Query().Get("ticket"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeContent(w, c, false)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := services.ViewerIdentity{
		HeaderEmail: r.Header.Get(common.ViewerEmailHeaderName),
		Ticket:      r.URL.Query().Get("ticket"),
	}
	c, err := s.access.Download(r.Context(), chi.URLParam(r, "token"), id, clientInfo(r))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeContent(w, c, true)
}

func writeContent(w http.ResponseWriter, c *services.Content, attachment bool) {
	w.Header().Set("Content-Type", c.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	if attachment {
		name := c.Filename
		if name == "" {
			name = "image"
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(c.Data)
}

// handleFile serves a blob of the embedded store behind a signed link.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	q := r.URL.Query()
	if err := s.files.Verify(key, q.Get("exp"), q.Get("sig")); err != nil {
		if errors.Is(err, blob.ErrBadSignature) {
			writeJSON(w, ErrorResponse{Error: "link expired or invalid", Code: http.StatusForbidden}, http.StatusForbidden)
			return
		}
		s.handleError(w, r, err)
		return
	}

	data, err := s.files.Get(r.Context(), key)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeContent(w, &services.Content{Data: data, ContentType: s.files.ContentType(key)}, false)
}
