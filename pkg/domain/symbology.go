package domain

import (
	"fmt"
	"strings"
)

// Symbology identifies the encoding standard of a detected code. The string
// value is the raw name reported to result consumers.
type Symbology string

const (
	SymbologyEAN8            Symbology = "EAN8"
	SymbologyEAN13           Symbology = "EAN13"
	SymbologyUPCA            Symbology = "UPCA"
	SymbologyUPCE            Symbology = "UPCE"
	SymbologyCode39          Symbology = "CODE39"
	SymbologyCode39Mod43     Symbology = "CODE39MOD43"
	SymbologyCode93          Symbology = "CODE93"
	SymbologyCode128         Symbology = "CODE128"
	SymbologyITF14           Symbology = "ITF14"
	SymbologyInterleaved2of5 Symbology = "I2OF5"
	SymbologyPDF417          Symbology = "PDF417"
	SymbologyQR              Symbology = "QR"
	SymbologyAztec           Symbology = "AZTEC"
	SymbologyDataMatrix      Symbology = "DATAMATRIX"
)

// DefaultSymbologies is the set of code formats a scanner accepts when none
// are configured. UPC-A is reported by capture hardware as zero-padded EAN-13,
// so it is not listed.
var DefaultSymbologies = []Symbology{ //nolint: gochecknoglobals
	SymbologyUPCE,
	SymbologyCode39,
	SymbologyCode39Mod43,
	SymbologyEAN13,
	SymbologyEAN8,
	SymbologyCode93,
	SymbologyCode128,
	SymbologyPDF417,
	SymbologyQR,
	SymbologyAztec,
	SymbologyITF14,
	SymbologyInterleaved2of5,
	SymbologyDataMatrix,
}

var knownSymbologies = map[string]Symbology{ //nolint: gochecknoglobals
	"EAN8":        SymbologyEAN8,
	"EAN-8":       SymbologyEAN8,
	"EAN13":       SymbologyEAN13,
	"EAN-13":      SymbologyEAN13,
	"UPCA":        SymbologyUPCA,
	"UPC-A":       SymbologyUPCA,
	"UPCE":        SymbologyUPCE,
	"UPC-E":       SymbologyUPCE,
	"CODE39":      SymbologyCode39,
	"CODE39MOD43": SymbologyCode39Mod43,
	"CODE93":      SymbologyCode93,
	"CODE128":     SymbologyCode128,
	"ITF14":       SymbologyITF14,
	"I2OF5":       SymbologyInterleaved2of5,
	"PDF417":      SymbologyPDF417,
	"QR":          SymbologyQR,
	"QRCODE":      SymbologyQR,
	"AZTEC":       SymbologyAztec,
	"DATAMATRIX":  SymbologyDataMatrix,
}

// ParseSymbology resolves a case-insensitive symbology name, accepting the
// common hyphenated spellings (e.g. "ean-13").
func ParseSymbology(name string) (Symbology, error) {
	s, ok := knownSymbologies[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown symbology %q", name)
	}

	return s, nil
}

// SymbologySet is a set of supported symbologies.
type SymbologySet map[Symbology]struct{}

// NewSymbologySet builds a set from the given symbologies.
func NewSymbologySet(symbologies ...Symbology) SymbologySet {
	set := make(SymbologySet, len(symbologies))
	for _, s := range symbologies {
		set[s] = struct{}{}
	}

	return set
}

// Contains reports whether s is a member of the set.
func (set SymbologySet) Contains(s Symbology) bool {
	_, ok := set[s]

	return ok
}

// Detection is a single code found in a capture frame. It is ephemeral and
// never persisted.
type Detection struct {
	RawCode   string
	Symbology Symbology
}

// NormalizedResult is the canonical (code, type) pair reported to consumers.
type NormalizedResult struct {
	Code string `json:"code"`
	Type string `json:"type"`
}
