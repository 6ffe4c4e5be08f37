package hardware

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tusharlock10/hwid/internal/process"
)

// SystemProber reads identifiers from the running host. The platform
// specific installID, cpuID and boardID methods live in the build-tagged
// files of this package.
type SystemProber struct {
	run      func(ctx context.Context, name string, args ...string) (string, error)
	readFile func(name string) ([]byte, error)
	nodeID   func() (node []byte, iface string)
	wmiQuery func(query string, dst any) error
	logger   *zap.Logger
}

// NewSystemProber returns a prober backed by the OS. A nil logger discards
// output.
func NewSystemProber(logger *zap.Logger) *SystemProber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemProber{
		run:      process.Output,
		readFile: os.ReadFile,
		nodeID:   uuidNode,
		wmiQuery: queryWMI,
		logger:   logger,
	}
}

// Probe implements Prober.
func (p *SystemProber) Probe(ctx context.Context, src Source) (string, error) {
	switch src {
	case InstallID:
		return p.installID(ctx)
	case NetworkID:
		return p.networkID()
	case CPUID:
		return p.cpuID(ctx)
	case BoardID:
		return p.boardID(ctx)
	}
	return "", fmt.Errorf("%s: %w", src, ErrUnsupported)
}
