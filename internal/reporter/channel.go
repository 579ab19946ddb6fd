package reporter

import (
	"net"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"timereport/internal/config"
)

// Target formats the channel target as "{host}:{port}".
func Target(cfg config.ConnectionConfig) string {
	return cfg.Host + ":" + cfg.Port
}

// OpenChannel creates a plaintext channel to Target(cfg). The channel
// connects lazily, so an unreachable endpoint only shows up as an RPCError
// on the first call. Transparent retries are disabled: a call is attempted
// once.
func OpenChannel(cfg config.ConnectionConfig, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target := Target(cfg)
	if cfg.TransportSecurity != "" && cfg.TransportSecurity != config.SecurityNone {
		return nil, &ChannelError{Target: target, Err: errors.Errorf("unsupported transport security %q", cfg.TransportSecurity)}
	}
	if _, _, err := net.SplitHostPort(target); err != nil {
		return nil, &ChannelError{Target: target, Err: err}
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDisableRetry(),
	}
	dialOpts = append(dialOpts, opts...)

	cc, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, &ChannelError{Target: target, Err: err}
	}
	return cc, nil
}
