package domain

import "fmt"

// Sector is an investment pillar. The set is closed: every value has a label in every locale.
type Sector string

const (
	SectorFashion      Sector = "fashion"
	SectorTechnology   Sector = "technology"
	SectorImportExport Sector = "import-export"
	SectorGovernance   Sector = "governance"
	SectorMarketing    Sector = "marketing"
	SectorRealEstate   Sector = "real-estate"
)

// Sectors returns all sectors in filter-toolbar order.
func Sectors() []Sector {
	return []Sector{
		SectorFashion,
		SectorTechnology,
		SectorImportExport,
		SectorGovernance,
		SectorMarketing,
		SectorRealEstate,
	}
}

// ParseSector returns the sector for an exact id match.
func ParseSector(id string) (Sector, bool) {
	for _, s := range Sectors() {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

// Label returns the localized display label. It panics on a value outside the enum,
// which can only be constructed by a conversion that bypasses ParseSector.
func (s Sector) Label(loc Locale) string {
	switch s {
	case SectorFashion:
		return pick(loc, "Fashion", "Thời trang", "ファッション")
	case SectorTechnology:
		return pick(loc, "Technology", "Công nghệ", "テクノロジー")
	case SectorImportExport:
		return pick(loc, "Import & Export", "Xuất nhập khẩu", "輸出入")
	case SectorGovernance:
		return pick(loc, "Governance", "Quản trị", "ガバナンス")
	case SectorMarketing:
		return pick(loc, "Marketing", "Marketing", "マーケティング")
	case SectorRealEstate:
		return pick(loc, "Real Estate", "Bất động sản", "不動産")
	}
	panic(fmt.Sprintf("domain: unknown sector %q", string(s)))
}

// AllSectorsLabel is the label of the "all" wildcard on the portfolio toolbar.
func AllSectorsLabel(loc Locale) string {
	return pick(loc, "All Sectors", "Tất cả lĩnh vực", "すべての分野")
}

func pick(loc Locale, en, vi, ja string) string {
	switch loc {
	case LocaleVI:
		return vi
	case LocaleJA:
		return ja
	}
	return en
}
