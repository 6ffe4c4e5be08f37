//go:build freebsd || netbsd || openbsd || dragonfly

package hardware

import (
	"context"

	"github.com/denisbrodbeck/machineid"
)

func (p *SystemProber) installID(ctx context.Context) (string, error) {
	return await(ctx, machineid.ID)
}

func (p *SystemProber) cpuID(_ context.Context) (string, error) {
	return "", ErrUnsupported
}

func (p *SystemProber) boardID(_ context.Context) (string, error) {
	return "", ErrUnsupported
}
