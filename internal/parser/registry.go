package parser

import (
	"log/slog"

	"github.com/telbill/invoice-pipeline/constants"
)

// Registry selects the parser variant for a carrier. Unknown carriers
// get the baseline parser, whose rule sets are the widest.
type Registry struct {
	parsers  map[string]Parser
	baseline Parser
}

func NewRegistry(tx TextExtractor, logger *slog.Logger) *Registry {
	vivo := NewVivoParser(tx, logger)
	claro := NewClaroParser(tx, logger)
	return &Registry{
		parsers: map[string]Parser{
			constants.CarrierVivo:  vivo,
			constants.CarrierClaro: claro,
		},
		baseline: vivo,
	}
}

// For returns the parser registered for carrier, or the baseline.
func (r *Registry) For(carrier string) Parser {
	if p, ok := r.parsers[constants.NormalizeCarrier(carrier)]; ok {
		return p
	}
	return r.baseline
}

// Baseline returns the default parser, also used for the preliminary
// text sample during carrier identification.
func (r *Registry) Baseline() Parser { return r.baseline }
