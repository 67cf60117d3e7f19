package font

import (
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// hasPairPositioning reports whether a GPOS table holds at least one pair
// adjustment subtable. Extension subtables are already resolved by the
// go-text loader.
func hasPairPositioning(gpos gtfont.GPOS) bool {
	for _, lk := range gpos.Lookups {
		for _, st := range lk.Subtables {
			if _, ok := st.(tables.PairPos); ok {
				return true
			}
		}
	}
	return false
}
