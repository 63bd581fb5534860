package conversions

// Transform is an affine map y = (x + Shift) * Num / Den + Offset.
//
// Num and Den are kept apart so ratios like 5/9 are applied as a multiply
// followed by a divide, which keeps results such as (212-32)*5/9 exact.
type Transform struct {
	Shift  float64
	Num    float64
	Den    float64
	Offset float64
}

// Scale returns the transform x * k.
func Scale(k float64) Transform {
	return Transform{Num: k, Den: 1}
}

// Divide returns the transform x / k.
func Divide(k float64) Transform {
	return Transform{Num: 1, Den: k}
}

// Add returns the transform x + b.
func Add(b float64) Transform {
	return Transform{Num: 1, Den: 1, Offset: b}
}

// Ratio returns the transform (x + shift) * num / den + offset.
func Ratio(shift, num, den, offset float64) Transform {
	return Transform{Shift: shift, Num: num, Den: den, Offset: offset}
}

// Apply evaluates the forward direction.
func (t Transform) Apply(x float64) float64 {
	return (x+t.Shift)*t.Num/t.Den + t.Offset
}

// Invert evaluates the reverse direction.
func (t Transform) Invert(y float64) float64 {
	return (y-t.Offset)*t.Den/t.Num - t.Shift
}

func (t Transform) valid() bool {
	return t.Num != 0 && t.Den != 0
}
