// Package models holds the owner API values as the CLI works with them.
package models

import (
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

type Asset struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Algorithm              string    `json:"algorithm"`
	Size                   int64     `json:"size"`
	Width                  int       `json:"width"`
	Height                 int       `json:"height"`
	WatermarkEnabled       bool      `json:"watermark_enabled"`
	HiddenWatermarkEnabled bool      `json:"hidden_watermark_enabled"`
	MetadataEnabled        bool      `json:"metadata_enabled"`
	AIProtectionEnabled    bool      `json:"ai_protection_enabled"`
	CreatedAt              time.Time `json:"created_at"`
}

type Settings struct {
	AssetID             string             `json:"asset_id"`
	WatermarkEnabled    bool               `json:"watermark_enabled"`
	Watermark           watermark.Settings `json:"watermark"`
	HiddenEnabled       bool               `json:"hidden_enabled"`
	HiddenMessage       string             `json:"hidden_message,omitempty"`
	MetadataEnabled     bool               `json:"metadata_enabled"`
	Metadata            metadata.Fields    `json:"metadata"`
	AIProtectionEnabled bool               `json:"ai_protection_enabled"`
}

// GrantRequest describes a grant to create.
type GrantRequest struct {
	AssetID       string            `json:"asset_id"`
	Name          string            `json:"name"`
	Password      string            `json:"password,omitempty"`
	AllowedEmails []string          `json:"allowed_emails,omitempty"`
	MaxViews      int               `json:"max_views"`
	AllowDownload bool              `json:"allow_download"`
	Features      pipeline.Features `json:"features"`
}

type Grant struct {
	ID               string            `json:"id"`
	AssetID          string            `json:"asset_id"`
	Token            string            `json:"token"`
	Name             string            `json:"name"`
	Features         pipeline.Features `json:"features"`
	RequiresPassword bool              `json:"requires_password"`
	AllowedEmails    []string          `json:"allowed_emails,omitempty"`
	MaxViews         int               `json:"max_views"`
	CurrentViews     int               `json:"current_views"`
	AllowDownload    bool              `json:"allow_download"`
	HasArtifact      bool              `json:"has_artifact"`
	// AccessURL is the public endpoint a viewer starts from.
	AccessURL string    `json:"access_url"`
	CreatedAt time.Time `json:"created_at"`
}

type AccessRequest struct {
	ID        string    `json:"id"`
	GrantID   string    `json:"grant_id"`
	GrantName string    `json:"grant_name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuditEntry struct {
	ID        string    `json:"id"`
	GrantID   string    `json:"grant_id,omitempty"`
	GrantName string    `json:"grant_name"`
	AssetID   string    `json:"asset_id"`
	AssetName string    `json:"asset_name"`
	Email     string    `json:"email"`
	IP        string    `json:"ip"`
	Country   string    `json:"country,omitempty"`
	Region    string    `json:"region,omitempty"`
	City      string    `json:"city,omitempty"`
	Action    string    `json:"action"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationSettings struct {
	AccessRequests bool `json:"access_requests"`
	Downloads      bool `json:"downloads"`
}

// MetadataTag is one tag read from an image.
type MetadataTag struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HiddenMessage is the result of looking for an invisible watermark.
type HiddenMessage struct {
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}
