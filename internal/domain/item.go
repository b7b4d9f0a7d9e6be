package domain

// Stat names accepted in an item's modifiers.
const (
	StatHealth = "health"
	StatPower  = "power"
)

// Stats holds signed stat deltas (item modifiers) or absolute values (character stats).
type Stats struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

// Add returns s with every stat of o added.
func (s Stats) Add(o Stats) Stats {
	return Stats{Health: s.Health + o.Health, Power: s.Power + o.Power}
}

// Sub returns s with every stat of o subtracted.
func (s Stats) Sub(o Stats) Stats {
	return Stats{Health: s.Health - o.Health, Power: s.Power - o.Power}
}

// ValidateModifiers checks that s fits as an item's stat modifiers.
func (s Stats) ValidateModifiers() error {
	if !inModifierRange(s.Health) || !inModifierRange(s.Power) {
		return ErrInvalidStat
	}
	return nil
}

func inModifierRange(v int) bool {
	return v >= -MaxStatModifier && v <= MaxStatModifier
}

// StatsFromMap converts a stat-name keyed map. Unknown stat names and
// out-of-range modifiers are rejected.
func StatsFromMap(m map[string]int) (Stats, error) {
	var s Stats
	for k, v := range m {
		switch k {
		case StatHealth:
			s.Health = v
		case StatPower:
			s.Power = v
		default:
			return Stats{}, ErrInvalidStat
		}
	}
	if err := s.ValidateModifiers(); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// ValidItemCode reports whether code is a storable item code.
func ValidItemCode(code int) bool {
	return code > 0 && code <= MaxItemCode
}

// ValidItemPrice reports whether price is a storable item price.
func ValidItemPrice(price int) bool {
	return price >= 0 && price <= MaxItemPrice
}

// Item is a catalog entry. Code and Price never change after creation.
type Item struct {
	Code  int    `json:"item_code" db:"item_code"`
	Name  string `json:"item_name" db:"item_name"`
	Stats Stats  `json:"item_stat" db:"item_stat"`
	Price int    `json:"item_price" db:"item_price"`
}

// ItemSummary is the list view of a catalog entry (stats excluded).
type ItemSummary struct {
	Code  int    `json:"item_code"`
	Name  string `json:"item_name"`
	Price int    `json:"item_price"`
}

// ItemUpdate carries the mutable fields of a catalog entry. Nil means unchanged.
// Price is present only so that attempts to change it can be rejected.
type ItemUpdate struct {
	Name  *string
	Stats *Stats
	Price *int
}
