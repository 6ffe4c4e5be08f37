//go:build linux

package hardware

import (
	"context"
	"errors"
	"fmt"

	"github.com/denisbrodbeck/machineid"
	"go.uber.org/zap"

	"github.com/tusharlock10/hwid/internal/process"
)

// installID reads the systemd/dbus machine-id.
func (p *SystemProber) installID(ctx context.Context) (string, error) {
	return await(ctx, machineid.ID)
}

func (p *SystemProber) cpuID(ctx context.Context) (string, error) {
	// Primary: SMBIOS processor record (x86). Needs root.
	out, err := p.run(ctx, "dmidecode", "-t", "processor")
	if err == nil {
		var v string
		if v, err = KeyedValue(out, "ID", ":"); err == nil {
			return processorID(v), nil
		}
	}
	if errors.Is(err, process.ErrTimeout) {
		return "", err
	}
	p.logger.Debug("dmidecode processor query failed, trying /proc/cpuinfo", zap.Error(err))

	// Fallback: /proc/cpuinfo Serial field (ARM / embedded)
	data, err := p.readFile("/proc/cpuinfo")
	if err != nil {
		return "", fmt.Errorf("read /proc/cpuinfo: %w", err)
	}
	return KeyedValue(string(data), "Serial", ":")
}

func (p *SystemProber) boardID(ctx context.Context) (string, error) {
	// Primary: sysfs DMI attribute. Readable by root only on most distros.
	data, err := p.readFile("/sys/class/dmi/id/board_serial")
	if err == nil {
		var v string
		if v, err = Normalize(string(data)); err == nil {
			return v, nil
		}
	}
	p.logger.Debug("sysfs board_serial unavailable, trying dmidecode", zap.Error(err))

	out, err := p.run(ctx, "dmidecode", "-s", "baseboard-serial-number")
	if err != nil {
		return "", err
	}
	return FirstLine(out)
}
