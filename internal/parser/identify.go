package parser

import (
	"strings"

	"github.com/telbill/invoice-pipeline/constants"
)

// carrierTokens maps identifying tokens (brand or historical corporate
// name) to a carrier, in priority order.
var carrierTokens = []struct {
	token   string
	carrier string
}{
	{"VIVO", constants.CarrierVivo},
	{"TELEFONICA", constants.CarrierVivo},
	{"CLARO", constants.CarrierClaro},
	{"EMBRATEL", constants.CarrierClaro},
}

// IdentifyCarrier infers the carrier from extracted text when it was not
// supplied as ingestion metadata. Returns "" when nothing matches.
func IdentifyCarrier(text string) string {
	upper := strings.ToUpper(text)
	for _, t := range carrierTokens {
		if strings.Contains(upper, t.token) {
			return t.carrier
		}
	}
	return ""
}
