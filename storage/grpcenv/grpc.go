package grpcenv

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// PathEnvServer is the server API for the PathEnv gRPC service.
//
// We intentionally use protobuf well-known types so this package does not
// require a protoc/codegen toolchain.
//
// Proto definition: pathenv.proto.
type PathEnvServer interface {
	// Current returns the host's freshly captured, encoded snapshot.
	Current(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	// Publish stores an encoded snapshot and returns its ID.
	Publish(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	// Fetch returns the encoded snapshot stored under an ID.
	Fetch(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	// Has reports whether an ID is stored.
	Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
}

// UnimplementedPathEnvServer can be embedded to have forward compatible implementations.
type UnimplementedPathEnvServer struct{}

func (UnimplementedPathEnvServer) Current(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Current not implemented")
}
func (UnimplementedPathEnvServer) Publish(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Publish not implemented")
}
func (UnimplementedPathEnvServer) Fetch(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Fetch not implemented")
}
func (UnimplementedPathEnvServer) Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Has not implemented")
}

// RegisterPathEnvServer registers the PathEnv service on a gRPC server.
func RegisterPathEnvServer(s grpc.ServiceRegistrar, srv PathEnvServer) {
	s.RegisterService(&PathEnv_ServiceDesc, srv)
}

// PathEnvClient is the client API for the PathEnv gRPC service.
type PathEnvClient interface {
	Current(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Publish(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Fetch(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type pathEnvClient struct{ cc grpc.ClientConnInterface }

func NewPathEnvClient(cc grpc.ClientConnInterface) PathEnvClient { return &pathEnvClient{cc: cc} }

func (c *pathEnvClient) Current(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/pathenv.v1.PathEnv/Current", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pathEnvClient) Publish(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/pathenv.v1.PathEnv/Publish", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pathEnvClient) Fetch(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/pathenv.v1.PathEnv/Fetch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pathEnvClient) Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/pathenv.v1.PathEnv/Has", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _PathEnv_Current_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PathEnvServer).Current(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/pathenv.v1.PathEnv/Current"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PathEnvServer).Current(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PathEnv_Publish_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PathEnvServer).Publish(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/pathenv.v1.PathEnv/Publish"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PathEnvServer).Publish(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _PathEnv_Fetch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PathEnvServer).Fetch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/pathenv.v1.PathEnv/Fetch"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PathEnvServer).Fetch(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _PathEnv_Has_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PathEnvServer).Has(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/pathenv.v1.PathEnv/Has"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PathEnvServer).Has(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// PathEnv_ServiceDesc is the grpc.ServiceDesc for the PathEnv service.
var PathEnv_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pathenv.v1.PathEnv",
	HandlerType: (*PathEnvServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Current", Handler: _PathEnv_Current_Handler},
		{MethodName: "Publish", Handler: _PathEnv_Publish_Handler},
		{MethodName: "Fetch", Handler: _PathEnv_Fetch_Handler},
		{MethodName: "Has", Handler: _PathEnv_Has_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pathenv.proto",
}
