package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SessionMetadataKey carries the session ID returned by Login
const SessionMetadataKey = "session-id"

// sessionFreeMethods can be called before login
var sessionFreeMethods = map[string]bool{
	LoginMethod:    true,
	ThankYouMethod: true,
}

type sessionIDKey struct{}

// SessionInterceptor returns a gRPC unary server interceptor that reads the session ID
// from request metadata and stores it in the context.
// If the ID is missing or malformed, it returns status.Unauthenticated.
// Whether the session still exists is decided later by the session repository.
func SessionInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if sessionFreeMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		values := md.Get(SessionMetadataKey)
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session-id header")
		}

		sessionID, err := uuid.Parse(values[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid session id")
		}

		return handler(context.WithValue(ctx, sessionIDKey{}, sessionID), req)
	}
}

// SessionIDFromContext returns the session ID stored by SessionInterceptor
func SessionIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(sessionIDKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no session in context")
	}
	return id, nil
}

// LoggingInterceptor returns a gRPC unary server interceptor that logs every call
// with its method, status code and duration
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if code == codes.Internal || code == codes.Unknown {
			logger.Error("rpc failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("rpc handled", fields...)
		}

		return resp, err
	}
}
