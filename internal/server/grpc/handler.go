package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pbconv"
	pb "github.com/dmitrijs2005/imagekeeper/internal/proto"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
)

// toStatus maps service errors to gRPC statuses. Owners see the detail of
// domain errors; anything unexpected is logged and reported as internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrCapacityExceeded),
		errors.Is(err, common.ErrUnsupportedAlgo):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrMetadataStage),
		errors.Is(err, common.ErrRenderingStage):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		s.logger.Error(ctx, "internal error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	u, err := s.svc.Users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	tokens, err := s.svc.Users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, s.toStatus(ctx, err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	tokens, err := s.svc.Users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) UploadAsset(ctx context.Context, req *pb.UploadAssetRequest) (*pb.Asset, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Assets.Upload(ctx, userID, req.Name, req.Data, req.Algorithm)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return assetToPB(a), nil
}

func (s *GRPCServer) ListAssets(ctx context.Context, _ *emptypb.Empty) (*pb.ListAssetsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.Assets.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListAssetsResponse{Assets: make([]*pb.Asset, 0, len(list))}
	for _, a := range list {
		resp.Assets = append(resp.Assets, assetToPB(a))
	}
	return resp, nil
}

func (s *GRPCServer) DeleteAsset(ctx context.Context, req *pb.AssetRef) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Assets.Delete(ctx, userID, req.AssetId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, req *pb.AssetRef) (*pb.Settings, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.svc.Settings.Get(ctx, userID, req.AssetId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Settings{
		AssetId:             st.AssetID,
		WatermarkEnabled:    st.WatermarkEnabled,
		Watermark:           pbconv.Watermark(st.Watermark),
		HiddenEnabled:       st.HiddenEnabled,
		HiddenMessage:       st.HiddenMessage,
		MetadataEnabled:     st.MetadataEnabled,
		Metadata:            pbconv.Metadata(st.Metadata),
		AiProtectionEnabled: st.AIProtectionEnabled,
	}, nil
}

func (s *GRPCServer) UpdateSettings(ctx context.Context, req *pb.Settings) (*pb.Asset, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Settings.Update(ctx, userID, &models.AssetSettings{
		AssetID:             req.AssetId,
		WatermarkEnabled:    req.WatermarkEnabled,
		Watermark:           pbconv.ToWatermark(req.Watermark),
		HiddenEnabled:       req.HiddenEnabled,
		HiddenMessage:       req.HiddenMessage,
		MetadataEnabled:     req.MetadataEnabled,
		Metadata:            pbconv.ToMetadata(req.Metadata),
		AIProtectionEnabled: req.AiProtectionEnabled,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return assetToPB(a), nil
}

func (s *GRPCServer) CreateGrant(ctx context.Context, req *pb.CreateGrantRequest) (*pb.Grant, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.svc.Grants.Create(ctx, userID, req.AssetId, services.GrantInput{
		Name:          req.Name,
		Password:      req.Password,
		AllowedEmails: req.AllowedEmails,
		MaxViews:      int(req.MaxViews),
		AllowDownload: req.AllowDownload,
		Features:      pbconv.ToFeatures(req.Features),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "grant created", "grant_id", g.ID)
	return s.grantToPB(g), nil
}

func (s *GRPCServer) ListGrants(ctx context.Context, req *pb.AssetRef) (*pb.ListGrantsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.Grants.List(ctx, userID, req.AssetId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListGrantsResponse{Grants: make([]*pb.Grant, 0, len(list))}
	for _, g := range list {
		resp.Grants = append(resp.Grants, s.grantToPB(g))
	}
	return resp, nil
}

func (s *GRPCServer) DeleteGrant(ctx context.Context, req *pb.GrantRef) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Grants.Delete(ctx, userID, req.GrantId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListAccessRequests(ctx context.Context, _ *emptypb.Empty) (*pb.ListAccessRequestsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.Access.ListRequests(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListAccessRequestsResponse{Requests: make([]*pb.AccessRequest, 0, len(list))}
	for _, r := range list {
		resp.Requests = append(resp.Requests, requestToPB(r))
	}
	return resp, nil
}

func (s *GRPCServer) ReviewAccessRequest(ctx context.Context, req *pb.ReviewRequest) (*pb.AccessRequest, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.svc.Access.Review(ctx, userID, req.RequestId, req.Action)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return requestToPB(r), nil
}

func (s *GRPCServer) ListAuditLog(ctx context.Context, req *pb.ListAuditLogRequest) (*pb.ListAuditLogResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.Access.AuditLog(ctx, userID, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListAuditLogResponse{Entries: make([]*pb.AuditEntry, 0, len(list))}
	for _, e := range list {
		resp.Entries = append(resp.Entries, &pb.AuditEntry{
			Id:        e.ID,
			GrantId:   e.GrantID,
			GrantName: e.GrantName,
			AssetId:   e.AssetID,
			AssetName: e.AssetName,
			Email:     e.Email,
			Ip:        e.IP,
			Country:   e.Country,
			Region:    e.Region,
			City:      e.City,
			Action:    e.Action,
			Success:   e.Success,
			CreatedAt: pbconv.Time(e.CreatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) GetNotificationSettings(ctx context.Context, _ *emptypb.Empty) (*pb.NotificationSettings, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.Users.NotificationSettings(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.NotificationSettings{AccessRequests: n.AccessRequests, Downloads: n.Downloads}, nil
}

func (s *GRPCServer) UpdateNotificationSettings(ctx context.Context, req *pb.NotificationSettings) (*pb.NotificationSettings, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n := &models.NotificationSettings{UserID: userID, AccessRequests: req.AccessRequests, Downloads: req.Downloads}
	if err := s.svc.Users.UpdateNotificationSettings(ctx, n); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.NotificationSettings{AccessRequests: n.AccessRequests, Downloads: n.Downloads}, nil
}

func (s *GRPCServer) GetMetadata(ctx context.Context, req *pb.ImageRef) (*pb.GetMetadataResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.svc.Inspect.Metadata(ctx, userID, req.AssetId, req.GrantId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.GetMetadataResponse{Tags: make([]*pb.MetadataTag, 0, len(tags))}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, &pb.MetadataTag{Group: t.Group, Name: t.Name, Value: t.Value})
	}
	return resp, nil
}

func (s *GRPCServer) ExtractHiddenMessage(ctx context.Context, req *pb.ImageRef) (*pb.HiddenMessageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	msg, found, err := s.svc.Inspect.HiddenMessage(ctx, userID, req.AssetId, req.GrantId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.HiddenMessageResponse{Found: found, Message: msg}, nil
}

func assetToPB(a *models.Asset) *pb.Asset {
	return &pb.Asset{
		Id:                     a.ID,
		Name:                   a.Name,
		Algorithm:              a.Algorithm,
		Size:                   a.Size,
		Width:                  int32(a.Width),
		Height:                 int32(a.Height),
		WatermarkEnabled:       a.WatermarkEnabled,
		HiddenWatermarkEnabled: a.HiddenWatermarkEnabled,
		MetadataEnabled:        a.MetadataEnabled,
		AiProtectionEnabled:    a.AIProtectionEnabled,
		CreatedAt:              pbconv.Time(a.CreatedAt),
	}
}

func (s *GRPCServer) grantToPB(g *models.Grant) *pb.Grant {
	return &pb.Grant{
		Id:               g.ID,
		AssetId:          g.AssetID,
		Token:            g.Token,
		Name:             g.Name,
		Features:         pbconv.Features(g.Features),
		RequiresPassword: g.RequiresPassword(),
		AllowedEmails:    g.AllowedEmails,
		MaxViews:         int32(g.MaxViews),
		CurrentViews:     int32(g.CurrentViews),
		AllowDownload:    g.AllowDownload,
		HasArtifact:      g.ArtifactKey != "",
		AccessUrl:        fmt.Sprintf("%s/api/v1/access/%s", s.publicBaseURL, g.Token),
		CreatedAt:        pbconv.Time(g.CreatedAt),
	}
}

func requestToPB(r *models.AccessRequest) *pb.AccessRequest {
	return &pb.AccessRequest{
		Id:        r.ID,
		GrantId:   r.GrantID,
		GrantName: r.GrantName,
		Email:     r.Email,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: pbconv.Time(r.CreatedAt),
		UpdatedAt: pbconv.Time(r.UpdatedAt),
	}
}
