package grpcenv

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hostwire.io/pathenv/storage"
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return storage.ErrNotFound
	case codes.InvalidArgument:
		// Server uses InvalidArgument for malformed IDs and for published
		// bytes that are not a valid snapshot encoding.
		return storage.ErrInvalidID
	case codes.DataLoss:
		// Server uses DataLoss when bytes do not match the requested ID.
		return storage.ErrIDMismatch
	default:
		switch st.Message() {
		case storage.ErrNotFound.Error():
			return storage.ErrNotFound
		case storage.ErrInvalidID.Error():
			return storage.ErrInvalidID
		case storage.ErrIDMismatch.Error():
			return storage.ErrIDMismatch
		default:
			return err
		}
	}
}
