package conversions

// Unit is a labelled measurement unit.
type Unit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Pair is a named forward/reverse conversion between two units.
type Pair struct {
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	From        Unit      `json:"from"`
	To          Unit      `json:"to"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Explanation string    `json:"explanation"`
	Transform   Transform `json:"-"`
}

// Convert maps a value in From units to To units.
func (p Pair) Convert(x float64) float64 {
	return p.Transform.Apply(x)
}

// ReverseConvert maps a value in To units back to From units.
func (p Pair) ReverseConvert(x float64) float64 {
	return p.Transform.Invert(x)
}

// Direction selects which way a Pair is evaluated.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// ParseDirection maps "reverse" to Reverse and anything else to Forward.
func ParseDirection(s string) Direction {
	if s == "reverse" {
		return Reverse
	}
	return Forward
}

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Apply evaluates the pair in the given direction.
func (p Pair) Apply(x float64, dir Direction) float64 {
	if dir == Reverse {
		return p.ReverseConvert(x)
	}
	return p.Convert(x)
}

// Units returns the (from, to) units as seen in the given direction.
func (p Pair) Units(dir Direction) (Unit, Unit) {
	if dir == Reverse {
		return p.To, p.From
	}
	return p.From, p.To
}

// QuickReference returns the "1 X = n Y" lines shown beside a converter.
func (p Pair) QuickReference() []string {
	return []string{
		"1 " + p.From.Symbol + " = " + FormatFixed(p.Convert(1), DefaultDecimals) + " " + p.To.Symbol,
		"1 " + p.To.Symbol + " = " + FormatFixed(p.ReverseConvert(1), DefaultDecimals) + " " + p.From.Symbol,
	}
}

// Category groups conversion pairs. Converters is a curated display list;
// membership is decided by Pair.Category.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Converters  []string `json:"converters"`
}
