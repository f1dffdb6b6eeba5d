// Package grpc serves the owner API over gRPC.
package grpc

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	pb "github.com/dmitrijs2005/imagekeeper/internal/proto"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	NotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, n *models.NotificationSettings) error
}

type AssetService interface {
	Upload(ctx context.Context, ownerID, name string, data []byte, algorithm string) (*models.Asset, error)
	List(ctx context.Context, ownerID string) ([]*models.Asset, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type SettingsService interface {
	Get(ctx context.Context, ownerID, assetID string) (*models.AssetSettings, error)
	Update(ctx context.Context, ownerID string, st *models.AssetSettings) (*models.Asset, error)
}

type GrantService interface {
	Create(ctx context.Context, ownerID, assetID string, in services.GrantInput) (*models.Grant, error)
	List(ctx context.Context, ownerID, assetID string) ([]*models.Grant, error)
	Delete(ctx context.Context, ownerID, grantID string) error
}

type AccessService interface {
	ListRequests(ctx context.Context, ownerID string) ([]*models.AccessRequest, error)
	Review(ctx context.Context, ownerID, requestID, action string) (*models.AccessRequest, error)
	AuditLog(ctx context.Context, ownerID string, limit int) ([]*models.AuditEntry, error)
}

type InspectService interface {
	Metadata(ctx context.Context, ownerID, assetID, grantID string) ([]services.Tag, error)
	HiddenMessage(ctx context.Context, ownerID, assetID, grantID string) (string, bool, error)
}

// Services bundles the collaborators of the owner API.
type Services struct {
	Users    UserService
	Assets   AssetService
	Settings SettingsService
	Grants   GrantService
	Access   AccessService
	Inspect  InspectService
}

type GRPCServer struct {
	pb.UnimplementedOwnerServiceServer
	address       string
	svc           Services
	logger        logging.Logger
	jwtSecret     []byte
	publicBaseURL string
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey, publicBaseURL string) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		svc:           svc,
		jwtSecret:     []byte(secretKey),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(64<<20),
	)
	pb.RegisterOwnerServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
