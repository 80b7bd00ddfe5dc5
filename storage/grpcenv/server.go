// Package grpcenv exposes snapshot capture and exchange over gRPC, so a
// loaded component can obtain its host's path semantics across a process
// boundary.
package grpcenv

import (
	"context"

	"github.com/ipfs/go-cid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/snapid"
	"hostwire.io/pathenv/storage"
)

// Server exposes a storage.Store and an environment provider over the
// PathEnv gRPC service.
type Server struct {
	UnimplementedPathEnvServer
	Store storage.Store
	Host  pathenv.Provider
}

func (s *Server) Current(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Host == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing environment provider")
	}
	snap, err := pathenv.Capture(s.Host)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bytes(snap.Encode()), nil
}

func (s *Server) Publish(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	b := in.GetValue()
	// Only well-formed snapshot encodings may enter the store.
	if _, err := pathenv.Decode(b); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	expected, err := snapid.ForBytes(b)
	if err != nil {
		return nil, status.Error(codes.Internal, "id computation failed")
	}
	id, err := s.Store.Put(b)
	if err != nil {
		return nil, mapErr(err)
	}
	if id != expected {
		return nil, status.Error(codes.DataLoss, storage.ErrIDMismatch.Error())
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Fetch(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	id, err := cid.Decode(in.GetValue())
	if err != nil || !id.Defined() {
		return nil, status.Error(codes.InvalidArgument, storage.ErrInvalidID.Error())
	}
	b, err := s.Store.Get(id)
	if err != nil {
		return nil, mapErr(err)
	}
	got, err := snapid.ForBytes(b)
	if err != nil {
		return nil, status.Error(codes.Internal, "id computation failed")
	}
	if got != id {
		return nil, status.Error(codes.DataLoss, storage.ErrIDMismatch.Error())
	}
	return wrapperspb.Bytes(b), nil
}

func (s *Server) Has(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	id, err := cid.Decode(in.GetValue())
	if err != nil || !id.Defined() {
		return nil, status.Error(codes.InvalidArgument, storage.ErrInvalidID.Error())
	}
	return wrapperspb.Bool(s.Store.Has(id)), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case err == storage.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())
	case err == storage.ErrInvalidID:
		return status.Error(codes.InvalidArgument, err.Error())
	case err == storage.ErrIDMismatch:
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
