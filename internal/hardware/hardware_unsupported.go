//go:build !linux && !darwin && !windows && !freebsd && !netbsd && !openbsd && !dragonfly

package hardware

import "context"

func (p *SystemProber) installID(_ context.Context) (string, error) {
	return "", ErrUnsupported
}

func (p *SystemProber) cpuID(_ context.Context) (string, error) {
	return "", ErrUnsupported
}

func (p *SystemProber) boardID(_ context.Context) (string, error) {
	return "", ErrUnsupported
}
