// Package bgpinfo holds the gRPC bindings for the bgp_info aggregation
// service.
//
// The messages are protobuf well-known wrapper types, so this package needs
// no protoc/codegen toolchain. Each contract message has a single scalar in
// field 1, which is the wire layout of the wrappers:
//
//	message values { uint64 time = 1; }
//	message result { bool success = 1; }
//
//	service bgp_info {
//	  rpc add_latest(values) returns (result);
//	}
package bgpinfo

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName         = "bgpinfo.bgp_info"
	AddLatestFullMethod = "/bgpinfo.bgp_info/add_latest"
)

// Values carries the reporting time in Unix seconds.
type Values = wrapperspb.UInt64Value

// Result reports whether the service accepted the values.
type Result = wrapperspb.BoolValue

func NewValues(unixSeconds uint64) *Values { return wrapperspb.UInt64(unixSeconds) }

func NewResult(success bool) *Result { return wrapperspb.Bool(success) }

// BgpInfoClient is the client API for the bgp_info service.
type BgpInfoClient interface {
	AddLatest(ctx context.Context, in *Values, opts ...grpc.CallOption) (*Result, error)
}

type bgpInfoClient struct{ cc grpc.ClientConnInterface }

func NewBgpInfoClient(cc grpc.ClientConnInterface) BgpInfoClient { return &bgpInfoClient{cc: cc} }

func (c *bgpInfoClient) AddLatest(ctx context.Context, in *Values, opts ...grpc.CallOption) (*Result, error) {
	out := new(Result)
	err := c.cc.Invoke(ctx, AddLatestFullMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BgpInfoServer is the server API for the bgp_info service.
type BgpInfoServer interface {
	AddLatest(context.Context, *Values) (*Result, error)
}

// UnimplementedBgpInfoServer can be embedded to have forward compatible implementations.
type UnimplementedBgpInfoServer struct{}

func (UnimplementedBgpInfoServer) AddLatest(context.Context, *Values) (*Result, error) {
	return nil, status.Error(codes.Unimplemented, "method add_latest not implemented")
}

func RegisterBgpInfoServer(s grpc.ServiceRegistrar, srv BgpInfoServer) {
	s.RegisterService(&BgpInfo_ServiceDesc, srv)
}

func _BgpInfo_AddLatest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Values)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BgpInfoServer).AddLatest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AddLatestFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BgpInfoServer).AddLatest(ctx, req.(*Values))
	}
	return interceptor(ctx, in, info, handler)
}

// BgpInfo_ServiceDesc is the grpc.ServiceDesc for the bgp_info service.
var BgpInfo_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BgpInfoServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "add_latest", Handler: _BgpInfo_AddLatest_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bgpinfo.proto",
}
