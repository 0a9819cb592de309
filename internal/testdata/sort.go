package testdata

import "fmt"

// SortOption is a value of the inventory sort control
type SortOption int

// Sort options
const (
	NameAscending SortOption = iota
	NameDescending
	PriceAscending
	PriceDescending
)

type sortOptionInfo struct {
	value string
	label string
}

var sortOptions = [...]sortOptionInfo{
	NameAscending:   {value: "az", label: "Name (A to Z)"},
	NameDescending:  {value: "za", label: "Name (Z to A)"},
	PriceAscending:  {value: "lohi", label: "Price (low to high)"},
	PriceDescending: {value: "hilo", label: "Price (high to low)"},
}

// SortOptions lists every option in the order the control renders them
func SortOptions() []SortOption {
	return []SortOption{NameAscending, NameDescending, PriceAscending, PriceDescending}
}

// Value is the option value used to drive the select control
func (s SortOption) Value() string {
	if !s.valid() {
		return ""
	}
	return sortOptions[s].value
}

// Label is the text the control displays when the option is active
func (s SortOption) Label() string {
	if !s.valid() {
		return ""
	}
	return sortOptions[s].label
}

func (s SortOption) String() string {
	return s.Label()
}

func (s SortOption) valid() bool {
	return s >= 0 && int(s) < len(sortOptions)
}

// ParseSortOption maps a control value such as "lohi" back to its option
func ParseSortOption(value string) (SortOption, error) {
	for _, opt := range SortOptions() {
		if opt.Value() == value {
			return opt, nil
		}
	}
	return 0, fmt.Errorf("unknown sort option %q", value)
}
