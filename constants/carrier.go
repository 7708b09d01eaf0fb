package constants

import "strings"

// Known carriers. CarrierOther is the bucket for invoices whose carrier
// could not be resolved from metadata or text.
const (
	CarrierVivo  = "VIVO"
	CarrierClaro = "CLARO"
	CarrierOther = "OUTROS"
)

// NormalizeCarrier uppercases and trims a carrier hint for registry lookup.
func NormalizeCarrier(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// MonthName returns the Portuguese month name used in report titles.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return ptMonths[m-1]
}

var ptMonths = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}
