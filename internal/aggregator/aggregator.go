// Package aggregator is a development implementation of the bgp_info
// service. It records the most recent reported time in memory.
package aggregator

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"timereport/internal/bgpinfo"
)

// Server implements bgpinfo.BgpInfoServer.
type Server struct {
	bgpinfo.UnimplementedBgpInfoServer

	Log *zap.Logger

	mu     sync.Mutex
	latest uint64
	calls  int
}

func (s *Server) AddLatest(ctx context.Context, v *bgpinfo.Values) (*bgpinfo.Result, error) {
	_ = ctx
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if v.GetValue() == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing time")
	}

	s.mu.Lock()
	s.latest = v.GetValue()
	s.mu.Unlock()

	if s.Log != nil {
		s.Log.Info("received an update", zap.Uint64("time", v.GetValue()))
	}
	return bgpinfo.NewResult(true), nil
}

// Latest returns the last accepted time, or 0 if none.
func (s *Server) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Calls counts add_latest requests, accepted or not.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
