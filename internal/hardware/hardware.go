// Package hardware collects the raw machine identifiers a fingerprint is
// derived from. Every probe is best effort: a failure only means the
// identifier is absent from the result.
package hardware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tusharlock10/hwid/internal/process"
)

// DefaultTimeout bounds each subprocess-backed probe.
const DefaultTimeout = 5 * time.Second

var (
	ErrUnsupported = errors.New("probe not supported on this platform")
	ErrEmpty       = errors.New("identifier is empty")
	ErrPlaceholder = errors.New("identifier is a placeholder")
	ErrNotFound    = errors.New("identifier not found in output")
)

// Source identifies one of the four probes. The set is closed.
type Source int

const (
	InstallID Source = iota // persistent OS installation GUID
	NetworkID               // hardware address of a network interface
	CPUID                   // processor identifier
	BoardID                 // mainboard serial number
)

// Sources lists every probe in the order its result enters the fingerprint.
// The order is part of the fingerprint and must not change.
var Sources = [...]Source{InstallID, NetworkID, CPUID, BoardID}

// Tag is the short code prefixed to the identifier value in the canonical
// string.
func (s Source) Tag() string {
	switch s {
	case InstallID:
		return "GUID"
	case NetworkID:
		return "MAC"
	case CPUID:
		return "CPU"
	case BoardID:
		return "MB"
	}
	return ""
}

func (s Source) String() string {
	switch s {
	case InstallID:
		return "install-id"
	case NetworkID:
		return "network-id"
	case CPUID:
		return "cpu-id"
	case BoardID:
		return "board-id"
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// bounded reports whether the probe is subject to the probe timeout.
func (s Source) bounded() bool {
	return s == CPUID || s == BoardID
}

// Identifier is one successfully collected value tagged with its source.
type Identifier struct {
	Source Source
	Value  string
}

// String renders the identifier as TAG:value.
func (id Identifier) String() string {
	return id.Source.Tag() + ":" + id.Value
}

// Prober reads the raw value of a single identifier.
type Prober interface {
	Probe(ctx context.Context, src Source) (string, error)
}

// Collector runs the probes in fixed order and drops every failure.
type Collector struct {
	prober  Prober
	timeout time.Duration
	logger  *zap.Logger
}

// NewCollector returns a Collector over p. A non-positive timeout selects
// DefaultTimeout; a nil logger discards output.
func NewCollector(p Prober, timeout time.Duration, logger *zap.Logger) *Collector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{prober: p, timeout: timeout, logger: logger}
}

// Collect runs the four probes sequentially and returns the identifiers that
// could be read, in probe order. It never fails; an empty result means no
// probe succeeded.
func (c *Collector) Collect(ctx context.Context) []Identifier {
	ids := make([]Identifier, 0, len(Sources))
	for _, src := range Sources {
		v, err := c.probe(ctx, src)
		if err != nil {
			c.logger.Debug("identifier absent", zap.Stringer("source", src), zap.Error(err))
			continue
		}
		c.logger.Debug("identifier collected", zap.Stringer("source", src))
		ids = append(ids, Identifier{Source: src, Value: v})
	}
	return ids
}

func (c *Collector) probe(ctx context.Context, src Source) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = "", fmt.Errorf("%s probe panicked: %v", src, r)
		}
	}()

	if src.bounded() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	raw, err := c.prober.Probe(ctx, src)
	if err != nil {
		return "", err
	}
	return Normalize(raw)
}

// Normalize trims surrounding whitespace and rejects empty and placeholder
// values.
func Normalize(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", ErrEmpty
	}
	if IsPlaceholder(v) {
		return "", fmt.Errorf("%q: %w", v, ErrPlaceholder)
	}
	return v, nil
}

// await runs a blocking call that has no context support and abandons it
// when ctx is done. The call keeps running in the background; its result is
// discarded.
func await(ctx context.Context, fn func() (string, error)) (string, error) {
	type result struct {
		v   string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		v, err := fn()
		ch <- result{v, err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", process.ErrTimeout
		}
		return "", ctx.Err()
	}
}
