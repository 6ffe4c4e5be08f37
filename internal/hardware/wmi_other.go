//go:build !windows

package hardware

func queryWMI(string, any) error {
	return ErrUnsupported
}
