package rules

// Classification is one row of the full rule table: a message shape and
// the obligation it maps to.
type Classification struct {
	Origin Origin `json:"origin"`
	Kind   Kind   `json:"kind"`
	Rule   Rule   `json:"rule"`
}

// Origins lists every known origin in stable order.
func Origins() []Origin {
	return []Origin{OriginIncoming, OriginOutgoing, OriginSelf}
}

// Kinds lists every known kind in stable order.
func Kinds() []Kind {
	return []Kind{KindQuery, KindCommand, KindQueryCommand}
}

// Table returns the complete classification, one row per (origin, kind)
// pair, in stable order. Totality of Select guarantees the table always
// has len(Origins()) * len(Kinds()) rows.
func Table() []Classification {
	table := make([]Classification, 0, len(Origins())*len(Kinds()))
	for _, origin := range Origins() {
		for _, kind := range Kinds() {
			table = append(table, Classification{
				Origin: origin,
				Kind:   kind,
				Rule:   MustSelect(origin, kind),
			})
		}
	}
	return table
}
