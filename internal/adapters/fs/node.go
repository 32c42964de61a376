package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/base47/internal/core/ports"
)

// SignerNodeID is the unique identifier for the signer Graft node.
const SignerNodeID graft.ID = "adapter.fs.signer"

func init() {
	graft.Register(graft.Node[ports.Signer]{
		ID:        SignerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Signer, error) {
			return NewSigner(), nil
		},
	})
}
