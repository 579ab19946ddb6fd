package reporter

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChannelError reports a target that could not be turned into a channel.
type ChannelError struct {
	Target string
	Err    error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel error: target %q: %v", e.Target, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

// RPCError reports a failed add_latest call, with the status supplied by the
// transport or the remote service.
type RPCError struct {
	Code    codes.Code
	Message string
	Err     error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error: %s: %s", e.Code, e.Message)
}

func (e *RPCError) Unwrap() error { return e.Err }

func rpcError(err error) *RPCError {
	st, ok := status.FromError(err)
	if !ok {
		return &RPCError{Code: codes.Unknown, Message: err.Error(), Err: err}
	}
	return &RPCError{Code: st.Code(), Message: st.Message(), Err: err}
}
