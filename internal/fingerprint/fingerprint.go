// Package fingerprint derives the HWID from the identifiers collected by
// package hardware: TAG:value entries joined in probe order, hashed with
// SHA-256 and rendered as uppercase hex.
package fingerprint

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tusharlock10/hwid/internal/crypto"
	"github.com/tusharlock10/hwid/internal/hardware"
)

const (
	// Separator joins tagged identifiers in the canonical string. Values
	// containing it are dropped so the join stays unambiguous.
	Separator = "|"

	// Sentinel is returned instead of a digest when no identifier could be
	// collected. It is meant to be displayed as is.
	Sentinel = "ERROR: fingerprint unavailable"
)

// Collector yields the identifiers of the current host in probe order.
type Collector interface {
	Collect(ctx context.Context) []hardware.Identifier
}

// Builder computes the fingerprint of the current host.
type Builder struct {
	collector Collector
	logger    *zap.Logger
}

// NewBuilder returns a Builder over c. A nil logger discards output.
func NewBuilder(c Collector, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{collector: c, logger: logger}
}

// Compute collects the identifiers and returns their digest, or Sentinel if
// none could be collected. It never panics and has no error channel.
func (b *Builder) Compute(ctx context.Context) (fp string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("fingerprint computation panicked", zap.Any("panic", r))
			fp = Sentinel
		}
	}()

	ids, dropped := usable(b.collector.Collect(ctx))
	for _, src := range dropped {
		b.logger.Debug("identifier contains separator, dropped", zap.Stringer("source", src))
	}
	if len(ids) == 0 {
		b.logger.Warn("no hardware identifier could be collected")
		return Sentinel
	}

	sources := make([]string, 0, len(ids))
	for _, id := range ids {
		sources = append(sources, id.Source.Tag())
	}
	b.logger.Debug("fingerprint computed", zap.Strings("sources", sources))
	return Digest(ids)
}

// Canonical joins the tagged identifiers with Separator in the given order.
// This string is the exact hash input.
func Canonical(ids []hardware.Identifier) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, Separator)
}

// Digest returns the uppercase SHA-256 hex digest of the canonical string of
// ids, or Sentinel when no usable identifier remains.
func Digest(ids []hardware.Identifier) string {
	ids, _ = usable(ids)
	if len(ids) == 0 {
		return Sentinel
	}
	canonical := Canonical(ids)
	if d, err := crypto.SealedSHA256HexUpper([]byte(canonical)); err == nil {
		return d
	}
	return crypto.SHA256HexUpper([]byte(canonical))
}

// usable drops identifiers whose value is empty or contains Separator.
func usable(ids []hardware.Identifier) (kept []hardware.Identifier, dropped []hardware.Source) {
	kept = make([]hardware.Identifier, 0, len(ids))
	for _, id := range ids {
		if id.Value == "" || strings.Contains(id.Value, Separator) {
			dropped = append(dropped, id.Source)
			continue
		}
		kept = append(kept, id)
	}
	return kept, dropped
}
