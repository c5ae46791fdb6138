package source

import "fmt"

// Engine names accepted by NewExtractor.
const (
	EngineLedongthuc = "ledongthuc"
	EngineDocconv    = "docconv"
)

// NewExtractor returns the PDFExtractor registered under engine.
func NewExtractor(engine string, layout Layout) (PDFExtractor, error) {
	switch engine {
	case EngineLedongthuc, "":
		return NewLedongthucExtractor(layout), nil
	case EngineDocconv:
		return NewDocconvExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q", engine)
	}
}
