//go:build windows

package hardware

import (
	"context"
	"errors"
	"fmt"

	"github.com/StackExchange/wmi"
	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"

	"github.com/tusharlock10/hwid/internal/process"
)

type win32Processor struct {
	ProcessorId string
}

type win32BaseBoard struct {
	SerialNumber string
}

func queryWMI(query string, dst any) error {
	return wmi.Query(query, dst)
}

func (p *SystemProber) installID(_ context.Context) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Cryptography`, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", fmt.Errorf("open Cryptography registry key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetStringValue("MachineGuid")
	if err != nil {
		return "", fmt.Errorf("read MachineGuid: %w", err)
	}
	return v, nil
}

func (p *SystemProber) cpuID(ctx context.Context) (string, error) {
	v, err := await(ctx, func() (string, error) {
		var dst []win32Processor
		if err := p.wmiQuery("SELECT ProcessorId FROM Win32_Processor", &dst); err != nil {
			return "", err
		}
		if len(dst) == 0 {
			return "", ErrNotFound
		}
		return dst[0].ProcessorId, nil
	})
	if err == nil {
		if v, err = Normalize(v); err == nil {
			return v, nil
		}
	}
	if errors.Is(err, process.ErrTimeout) {
		return "", err
	}
	p.logger.Debug("WMI processor query failed, trying wmic", zap.Error(err))

	out, err := p.run(ctx, "wmic", "cpu", "get", "ProcessorId")
	if err != nil {
		return "", err
	}
	return TableValue(out, "ProcessorId")
}

func (p *SystemProber) boardID(ctx context.Context) (string, error) {
	v, err := await(ctx, func() (string, error) {
		var dst []win32BaseBoard
		if err := p.wmiQuery("SELECT SerialNumber FROM Win32_BaseBoard", &dst); err != nil {
			return "", err
		}
		if len(dst) == 0 {
			return "", ErrNotFound
		}
		return dst[0].SerialNumber, nil
	})
	if err == nil {
		if v, err = Normalize(v); err == nil {
			return v, nil
		}
	}
	if errors.Is(err, process.ErrTimeout) {
		return "", err
	}
	p.logger.Debug("WMI baseboard query failed, trying wmic", zap.Error(err))

	out, err := p.run(ctx, "wmic", "baseboard", "get", "SerialNumber")
	if err != nil {
		return "", err
	}
	return TableValue(out, "SerialNumber")
}
