package activation

// Number covers the scalar types the activation functions operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ReLU returns x for positive x and 0 otherwise.
func ReLU[T Number](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// RPReLU evaluates the adjustable piecewise-linear activation
//
//	(x - gamma) * slope + zeta
//
// where the slope is 1 above the threshold gamma and beta at or below it.
func RPReLU[T Number](x, beta, gamma, zeta T) T {
	if x > gamma {
		return x - gamma + zeta
	}
	return (x-gamma)*beta + zeta
}

// RPReLUDerived is the derivative of RPReLU with respect to x: 1 above
// gamma, beta otherwise. zeta vanishes in the derivative.
func RPReLUDerived[T Number](x, beta, gamma T) T {
	if x > gamma {
		return 1
	}
	return beta
}

// Params holds one layer's (or channel's) RPReLU parameters. They are
// mutable training state; persistence of the three scalars is the
// caller's concern.
type Params[T Number] struct {
	Beta  T // slope below the threshold
	Gamma T // threshold
	Zeta  T // additive offset
}

// Apply evaluates RPReLU at x with the current parameters.
func (p Params[T]) Apply(x T) T {
	return RPReLU(x, p.Beta, p.Gamma, p.Zeta)
}

// Derive evaluates the RPReLU derivative at x with the current parameters.
func (p Params[T]) Derive(x T) T {
	return RPReLUDerived(x, p.Beta, p.Gamma)
}

// Step applies caller-computed parameter deltas in place. The kernel does
// not derive these deltas itself; a full parameter-gradient rule has not
// been settled yet, so training loops supply their own.
func (p *Params[T]) Step(dBeta, dGamma, dZeta T) {
	p.Beta += dBeta
	p.Gamma += dGamma
	p.Zeta += dZeta
}
