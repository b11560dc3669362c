package scanner

import (
	"strings"

	"codescanner/pkg/domain"
)

// Normalize maps a raw detected code and its symbology to the canonical
// (code, type) pair reported to consumers.
//
// Capture hardware reports UPC-A codes as EAN-13 with a leading zero, so an
// EAN-13 code starting with '0' loses exactly one leading '0' and is reported
// as UPC-A. Every other input is returned unchanged, typed by the symbology's
// raw name.
func Normalize(rawCode string, symbology domain.Symbology) domain.NormalizedResult {
	if symbology == domain.SymbologyEAN13 && strings.HasPrefix(rawCode, "0") {
		return domain.NormalizedResult{
			Code: rawCode[1:],
			Type: string(domain.SymbologyUPCA),
		}
	}

	return domain.NormalizedResult{Code: rawCode, Type: string(symbology)}
}
