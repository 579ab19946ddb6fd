package reporter

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"

	"timereport/internal/aggregator"
	"timereport/internal/bgpinfo"
	"timereport/internal/config"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestTarget(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"127.0.0.1", "50051", "127.0.0.1:50051"},
		{"bgp.example.net", "7179", "bgp.example.net:7179"},
		{"[2001:db8::1]", "50051", "[2001:db8::1]:50051"},
	}
	for _, test := range tests {
		got := Target(config.ConnectionConfig{Host: test.host, Port: test.port})
		if got != test.want {
			t.Errorf("Target(%q, %q) = %q, want %q", test.host, test.port, got, test.want)
		}
	}
}

func TestOpenChannel(t *testing.T) {
	// Nothing listens on port 1; the channel must still open.
	cc, err := OpenChannel(config.ConnectionConfig{Host: "127.0.0.1", Port: "1", TransportSecurity: config.SecurityNone})
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}
	if got := cc.Target(); got != "127.0.0.1:1" {
		t.Errorf("Target = %q", got)
	}
	cc.Close()

	for _, cfg := range []config.ConnectionConfig{
		{Host: "2001:db8::1", Port: "50051"},
		{Host: "127.0.0.1", Port: "50051", TransportSecurity: "tls"},
	} {
		_, err := OpenChannel(cfg)
		var cerr *ChannelError
		if !errors.As(err, &cerr) {
			t.Errorf("OpenChannel(%+v): expected *ChannelError, got %v", cfg, err)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got := BuildRequest(fixedClock(at))
	if diff := cmp.Diff(bgpinfo.NewValues(uint64(at.Unix())), got, protocmp.Transform()); diff != "" {
		t.Errorf("BuildRequest: %s", diff)
	}

	before := time.Now().Unix()
	sec := int64(BuildRequest(SystemClock{}).GetValue())
	after := time.Now().Unix()
	if sec < before || sec > after {
		t.Errorf("system time %d outside [%d, %d]", sec, before, after)
	}

	if got := BuildRequest(fixedClock(time.Unix(-60, 0))).GetValue(); got != 0 {
		t.Errorf("pre-epoch time = %d", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReport(t *testing.T) {
	for _, test := range []struct {
		res  *bgpinfo.Result
		want string
	}{
		{bgpinfo.NewResult(true), "success: true\n"},
		{bgpinfo.NewResult(false), "success: false\n"},
		{nil, "success: false\n"},
	} {
		var buf bytes.Buffer
		if err := Report(&buf, test.res); err != nil {
			t.Fatalf("Report: %v", err)
		}
		if got := buf.String(); got != test.want {
			t.Errorf("Report = %q, want %q", got, test.want)
		}
	}
	if err := Report(failingWriter{}, bgpinfo.NewResult(true)); err == nil {
		t.Errorf("expected write error")
	}
}

type countingStub struct {
	calls int
	err   error
}

func (s *countingStub) AddLatest(context.Context, *bgpinfo.Values, ...grpc.CallOption) (*bgpinfo.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return bgpinfo.NewResult(true), nil
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	stub := &countingStub{}
	res, err := Invoke(ctx, stub, bgpinfo.NewValues(1))
	if err != nil || !res.GetValue() {
		t.Fatalf("Invoke: %v, %v", res, err)
	}

	stub = &countingStub{err: status.Error(codes.Internal, "database unavailable")}
	_, err = Invoke(ctx, stub, bgpinfo.NewValues(1))
	var rerr *RPCError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RPCError, got %v", err)
	}
	if rerr.Code != codes.Internal || rerr.Message != "database unavailable" {
		t.Errorf("RPCError = %+v", rerr)
	}
	if stub.calls != 1 {
		t.Errorf("calls = %d, want 1", stub.calls)
	}

	stub = &countingStub{err: errors.New("plain")}
	_, err = Invoke(ctx, stub, bgpinfo.NewValues(1))
	if !errors.As(err, &rerr) || rerr.Code != codes.Unknown {
		t.Errorf("non-status error: %v", err)
	}
}

func serve(t *testing.T) (*aggregator.Server, config.ConnectionConfig) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	agg := &aggregator.Server{}
	s := grpc.NewServer()
	bgpinfo.RegisterBgpInfoServer(s, agg)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	host, port, err := net.SplitHostPort(lis.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	return agg, config.ConnectionConfig{Host: host, Port: port, TransportSecurity: config.SecurityNone}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRun(t *testing.T) {
	agg, cfg := serve(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	sess, err := Setup(cfg, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer sess.Close()

	var out bytes.Buffer
	if err := sess.Run(testContext(t), fixedClock(at), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "success: true\n" {
		t.Errorf("output = %q", got)
	}
	if got := agg.Latest(); got != uint64(at.Unix()) {
		t.Errorf("server recorded %d", got)
	}
	if got := agg.Calls(); got != 1 {
		t.Errorf("server saw %d calls", got)
	}
}

func TestRunRemoteError(t *testing.T) {
	agg, cfg := serve(t)

	sess, err := Setup(cfg, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer sess.Close()

	var out bytes.Buffer
	err = sess.Run(testContext(t), fixedClock(time.Unix(0, 0)), &out)
	var rerr *RPCError
	if !errors.As(err, &rerr) || rerr.Code != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument RPCError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output on failure: %q", out.String())
	}
	if got := agg.Calls(); got != 1 {
		t.Errorf("server saw %d calls, want 1", got)
	}
}

func TestRunUnreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	host, port, _ := net.SplitHostPort(lis.Addr().String())
	lis.Close()

	sess, err := Setup(config.ConnectionConfig{Host: host, Port: port}, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer sess.Close()

	var out bytes.Buffer
	err = sess.Run(testContext(t), SystemClock{}, &out)
	var rerr *RPCError
	if !errors.As(err, &rerr) || rerr.Code != codes.Unavailable {
		t.Fatalf("expected Unavailable RPCError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output on failure: %q", out.String())
	}
}
