package gateway

import (
	"context"

	"google.golang.org/grpc/peer"
)

// peerAddr returns the dialing address recorded by grpc's peer
// transport-credentials, or "" if unavailable (e.g. in-process tests with
// no transport).
func peerAddr(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	return p.Addr.String()
}
