package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/imagekeeper/internal/client/models"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pbconv"
	pb "github.com/dmitrijs2005/imagekeeper/internal/proto"
)

const maxUploadSize = 64 << 20

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.OwnerServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.OwnerService_Refresh_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.Tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	// tokens rotated, retry once with the new access token
	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(maxUploadSize)),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewOwnerServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) UploadAsset(ctx context.Context, name string, data []byte, algorithm string) (*models.Asset, error) {
	resp, err := s.client.UploadAsset(ctx, &pb.UploadAssetRequest{Name: name, Data: data, Algorithm: algorithm})
	if err != nil {
		return nil, s.mapError(err)
	}
	return assetFromPB(resp), nil
}

func (s *GRPCClient) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	resp, err := s.client.ListAssets(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]*models.Asset, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		out = append(out, assetFromPB(a))
	}
	return out, nil
}

func (s *GRPCClient) DeleteAsset(ctx context.Context, assetID string) error {
	_, err := s.client.DeleteAsset(ctx, &pb.AssetRef{AssetId: assetID})
	return s.mapError(err)
}

func (s *GRPCClient) GetSettings(ctx context.Context, assetID string) (*models.Settings, error) {
	resp, err := s.client.GetSettings(ctx, &pb.AssetRef{AssetId: assetID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Settings{
		AssetID:             resp.AssetId,
		WatermarkEnabled:    resp.WatermarkEnabled,
		Watermark:           pbconv.ToWatermark(resp.Watermark),
		HiddenEnabled:       resp.HiddenEnabled,
		HiddenMessage:       resp.HiddenMessage,
		MetadataEnabled:     resp.MetadataEnabled,
		Metadata:            pbconv.ToMetadata(resp.Metadata),
		AIProtectionEnabled: resp.AiProtectionEnabled,
	}, nil
}

func (s *GRPCClient) UpdateSettings(ctx context.Context, st *models.Settings) (*models.Asset, error) {
	resp, err := s.client.UpdateSettings(ctx, &pb.Settings{
		AssetId:             st.AssetID,
		WatermarkEnabled:    st.WatermarkEnabled,
		Watermark:           pbconv.Watermark(st.Watermark),
		HiddenEnabled:       st.HiddenEnabled,
		HiddenMessage:       st.HiddenMessage,
		MetadataEnabled:     st.MetadataEnabled,
		Metadata:            pbconv.Metadata(st.Metadata),
		AiProtectionEnabled: st.AIProtectionEnabled,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return assetFromPB(resp), nil
}

func (s *GRPCClient) CreateGrant(ctx context.Context, req *models.GrantRequest) (*models.Grant, error) {
	resp, err := s.client.CreateGrant(ctx, &pb.CreateGrantRequest{
		AssetId:       req.AssetID,
		Name:          req.Name,
		Password:      req.Password,
		AllowedEmails: req.AllowedEmails,
		MaxViews:      int32(req.MaxViews),
		AllowDownload: req.AllowDownload,
		Features:      pbconv.Features(req.Features),
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return grantFromPB(resp), nil
}

func (s *GRPCClient) ListGrants(ctx context.Context, assetID string) ([]*models.Grant, error) {
	resp, err := s.client.ListGrants(ctx, &pb.AssetRef{AssetId: assetID})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]*models.Grant, 0, len(resp.Grants))
	for _, g := range resp.Grants {
		out = append(out, grantFromPB(g))
	}
	return out, nil
}

func (s *GRPCClient) DeleteGrant(ctx context.Context, grantID string) error {
	_, err := s.client.DeleteGrant(ctx, &pb.GrantRef{GrantId: grantID})
	return s.mapError(err)
}

func (s *GRPCClient) ListAccessRequests(ctx context.Context) ([]*models.AccessRequest, error) {
	resp, err := s.client.ListAccessRequests(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]*models.AccessRequest, 0, len(resp.Requests))
	for _, r := range resp.Requests {
		out = append(out, requestFromPB(r))
	}
	return out, nil
}

func (s *GRPCClient) ReviewAccessRequest(ctx context.Context, requestID, action string) (*models.AccessRequest, error) {
	resp, err := s.client.ReviewAccessRequest(ctx, &pb.ReviewRequest{RequestId: requestID, Action: action})
	if err != nil {
		return nil, s.mapError(err)
	}
	return requestFromPB(resp), nil
}

func (s *GRPCClient) ListAuditLog(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	resp, err := s.client.ListAuditLog(ctx, &pb.ListAuditLogRequest{Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]*models.AuditEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		out = append(out, &models.AuditEntry{
			ID:        e.Id,
			GrantID:   e.GrantId,
			GrantName: e.GrantName,
			AssetID:   e.AssetId,
			AssetName: e.AssetName,
			Email:     e.Email,
			IP:        e.Ip,
			Country:   e.Country,
			Region:    e.Region,
			City:      e.City,
			Action:    e.Action,
			Success:   e.Success,
			CreatedAt: pbconv.ToTime(e.CreatedAt),
		})
	}
	return out, nil
}

func (s *GRPCClient) GetNotificationSettings(ctx context.Context) (*models.NotificationSettings, error) {
	resp, err := s.client.GetNotificationSettings(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.NotificationSettings{AccessRequests: resp.AccessRequests, Downloads: resp.Downloads}, nil
}

func (s *GRPCClient) UpdateNotificationSettings(ctx context.Context, n *models.NotificationSettings) (*models.NotificationSettings, error) {
	resp, err := s.client.UpdateNotificationSettings(ctx, &pb.NotificationSettings{AccessRequests: n.AccessRequests, Downloads: n.Downloads})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.NotificationSettings{AccessRequests: resp.AccessRequests, Downloads: resp.Downloads}, nil
}

func (s *GRPCClient) GetMetadata(ctx context.Context, assetID, grantID string) ([]*models.MetadataTag, error) {
	resp, err := s.client.GetMetadata(ctx, &pb.ImageRef{AssetId: assetID, GrantId: grantID})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]*models.MetadataTag, 0, len(resp.Tags))
	for _, t := range resp.Tags {
		out = append(out, &models.MetadataTag{Group: t.Group, Name: t.Name, Value: t.Value})
	}
	return out, nil
}

func (s *GRPCClient) ExtractHiddenMessage(ctx context.Context, assetID, grantID string) (*models.HiddenMessage, error) {
	resp, err := s.client.ExtractHiddenMessage(ctx, &pb.ImageRef{AssetId: assetID, GrantId: grantID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.HiddenMessage{Found: resp.Found, Message: resp.Message}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func assetFromPB(a *pb.Asset) *models.Asset {
	return &models.Asset{
		ID:                     a.Id,
		Name:                   a.Name,
		Algorithm:              a.Algorithm,
		Size:                   a.Size,
		Width:                  int(a.Width),
		Height:                 int(a.Height),
		WatermarkEnabled:       a.WatermarkEnabled,
		HiddenWatermarkEnabled: a.HiddenWatermarkEnabled,
		MetadataEnabled:        a.MetadataEnabled,
		AIProtectionEnabled:    a.AiProtectionEnabled,
		CreatedAt:              pbconv.ToTime(a.CreatedAt),
	}
}

func grantFromPB(g *pb.Grant) *models.Grant {
	return &models.Grant{
		ID:               g.Id,
		AssetID:          g.AssetId,
		Token:            g.Token,
		Name:             g.Name,
		Features:         pbconv.ToFeatures(g.Features),
		RequiresPassword: g.RequiresPassword,
		AllowedEmails:    g.AllowedEmails,
		MaxViews:         int(g.MaxViews),
		CurrentViews:     int(g.CurrentViews),
		AllowDownload:    g.AllowDownload,
		HasArtifact:      g.HasArtifact,
		AccessURL:        g.AccessUrl,
		CreatedAt:        pbconv.ToTime(g.CreatedAt),
	}
}

func requestFromPB(r *pb.AccessRequest) *models.AccessRequest {
	return &models.AccessRequest{
		ID:        r.Id,
		GrantID:   r.GrantId,
		GrantName: r.GrantName,
		Email:     r.Email,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: pbconv.ToTime(r.CreatedAt),
		UpdatedAt: pbconv.ToTime(r.UpdatedAt),
	}
}
