package hardware

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// randomInterface is the interface name google/uuid reports when it had to
// invent a node ID.
const randomInterface = "random"

func uuidNode() ([]byte, string) {
	node := uuid.NodeID()
	return node, uuid.NodeInterface()
}

// networkID returns the 48-bit hardware address of the first interface that
// has one, as a decimal integer.
//
// When no interface has a hardware address, google/uuid substitutes random
// bytes, so the value (and the fingerprint) changes between runs on such
// hosts. That behaviour is kept as is; it is only logged.
func (p *SystemProber) networkID() (string, error) {
	node, iface := p.nodeID()
	if len(node) != 6 {
		return "", fmt.Errorf("node id has %d bytes: %w", len(node), ErrEmpty)
	}
	var v uint64
	for _, b := range node {
		v = v<<8 | uint64(b)
	}
	if v == 0 {
		return "", ErrEmpty
	}
	if iface == randomInterface {
		p.logger.Warn("no hardware address found; network identifier is random and the fingerprint will not be stable")
	}
	return strconv.FormatUint(v, 10), nil
}
