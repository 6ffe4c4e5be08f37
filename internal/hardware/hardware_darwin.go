//go:build darwin

package hardware

import (
	"context"

	"github.com/denisbrodbeck/machineid"
)

// installID reads IOPlatformUUID.
func (p *SystemProber) installID(ctx context.Context) (string, error) {
	return await(ctx, machineid.ID)
}

// cpuID reads the CPUID signature. Apple silicon has none, which leaves the
// identifier absent.
func (p *SystemProber) cpuID(ctx context.Context) (string, error) {
	out, err := p.run(ctx, "sysctl", "-n", "machdep.cpu.signature")
	if err != nil {
		return "", err
	}
	return FirstLine(out)
}

func (p *SystemProber) boardID(ctx context.Context) (string, error) {
	out, err := p.run(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", err
	}
	return KeyedValue(out, "IOPlatformSerialNumber", "=")
}
