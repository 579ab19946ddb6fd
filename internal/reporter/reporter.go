// Package reporter sends the current time to a bgp_info service once and
// prints the service's answer.
//
// The lifecycle is linear: a Session is set up from a resolved endpoint,
// Run builds the request, makes exactly one add_latest call and writes the
// result. Nothing is retried and no deadline is added to the call; callers
// that want one put it on the context.
package reporter

import (
	"context"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"timereport/internal/bgpinfo"
	"timereport/internal/config"
)

// Session is the state for one reporting run.
type Session struct {
	Config config.ConnectionConfig
	Conn   *grpc.ClientConn
	Stub   bgpinfo.BgpInfoClient
	Log    *zap.Logger
}

// Setup opens the channel for cfg and binds a stub to it.
func Setup(cfg config.ConnectionConfig, log *zap.Logger, opts ...grpc.DialOption) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cc, err := OpenChannel(cfg, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("channel opened", zap.String("target", cc.Target()))
	return &Session{
		Config: cfg,
		Conn:   cc,
		Stub:   bgpinfo.NewBgpInfoClient(cc),
		Log:    log,
	}, nil
}

// Invoke performs a single blocking add_latest call.
func Invoke(ctx context.Context, stub bgpinfo.BgpInfoClient, req *bgpinfo.Values) (*bgpinfo.Result, error) {
	res, err := stub.AddLatest(ctx, req)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

// Run reports clock's current time and writes the response to w. Nothing is
// written to w unless the call succeeds.
func (s *Session) Run(ctx context.Context, clock Clock, w io.Writer) error {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	req := BuildRequest(clock)
	log.Debug("calling add_latest", zap.Uint64("time", req.GetValue()))

	res, err := Invoke(ctx, s.Stub, req)
	if err != nil {
		log.Error("add_latest failed", zap.Error(err))
		return err
	}
	log.Info("add_latest completed", zap.Uint64("time", req.GetValue()), zap.Bool("success", res.GetValue()))
	return Report(w, res)
}

func (s *Session) Close() error {
	if s == nil || s.Conn == nil {
		return nil
	}
	return s.Conn.Close()
}
