//go:build linux && amd64

package resolve

import (
	"bytes"
	"fmt"

	"github.com/Binject/debug/elf"
)

// Export represents a single exported symbol from the vDSO image
type Export struct {
	Name    string
	Address uintptr
}

// parseExports enumerates the dynamic symbols of the in-memory image.
// The vDSO is linked at a nominal address (usually 0), so each symbol
// value is rebased against the lowest PT_LOAD vaddr before the actual
// load address is applied.
func parseExports(data []byte, base uintptr) ([]Export, error) {
	file, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vdso image did not parse as ELF: %w", err)
	}
	defer file.Close()

	var loadVaddr uint64
	found := false
	for _, prog := range file.Progs {
		if prog.Type == elf.PT_LOAD && (!found || prog.Vaddr < loadVaddr) {
			loadVaddr = prog.Vaddr
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("vdso image has no PT_LOAD segment")
	}

	syms, err := file.DynamicSymbols()
	if err != nil {
		return nil, fmt.Errorf("reading vdso dynamic symbols: %w", err)
	}

	exports := make([]Export, 0, len(syms))
	for _, sym := range syms {
		if sym.Name == "" || sym.Value == 0 {
			continue
		}
		exports = append(exports, Export{
			Name:    sym.Name,
			Address: base + uintptr(sym.Value-loadVaddr),
		})
	}
	return exports, nil
}
