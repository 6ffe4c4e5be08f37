package hardware

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"
)

// stubProber builds a SystemProber whose commands and files are served from
// maps keyed by the joined argv and the path. WMI is unavailable unless a
// test sets wmiQuery.
func stubProber(cmds map[string]string, files map[string]string) *SystemProber {
	return &SystemProber{
		run: func(_ context.Context, name string, args ...string) (string, error) {
			key := strings.Join(append([]string{name}, args...), " ")
			out, ok := cmds[key]
			if !ok {
				return "", errors.New("exit status 1")
			}
			return out, nil
		},
		readFile: func(name string) ([]byte, error) {
			data, ok := files[name]
			if !ok {
				return nil, os.ErrPermission
			}
			return []byte(data), nil
		},
		nodeID:   func() ([]byte, string) { return nil, "" },
		wmiQuery: func(string, any) error { return errors.New("WMI unavailable") },
		logger:   zap.NewNop(),
	}
}
