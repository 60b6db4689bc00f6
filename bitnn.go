package bitnn

import (
	"context"
	"sync"
	"time"

	"github.com/seehuhn/mt19937"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitnn/activation"
	"github.com/hupe1980/bitnn/bitvec"
	"github.com/hupe1980/bitnn/kernel"
)

// Column wraps one output cell's weight bits behind a read-write lock.
// Forward and Backward take shared read access, Update and Perturb take
// exclusive write access, so a column always has at most one writer while
// readers see a consistent snapshot. Columns never share words.
type Column struct {
	mu   sync.RWMutex
	bits bitvec.Vector
}

// Snapshot returns a copy of the column's weight bits.
func (c *Column) Snapshot() bitvec.Vector {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bits.Clone()
}

// OnesCount returns the number of set weight bits in the column.
func (c *Column) OnesCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bits.OnesCount()
}

// Layer is a single binary layer: an inputs x outputs matrix of 1-bit
// weights stored as per-output-cell packed columns, plus the layer's
// RPReLU parameters.
//
// All buffers a Layer hands to the kernel packages are allocated and
// sized here, so the kernels' padding and length preconditions hold by
// construction. A Layer is safe for concurrent use.
type Layer struct {
	inputs      int
	outputs     int
	threshold   int8
	params      activation.Params[int32]
	parallelism int
	logger      *Logger

	columns []*Column

	srcMu sync.Mutex
	src   kernel.Source
}

// New creates a binary layer with the given number of input and output
// cells. All weight bits start at zero; load trained columns with
// SetColumn or randomize them with Perturb.
func New(inputs, outputs int, opts ...Option) (*Layer, error) {
	if inputs <= 0 {
		return nil, &ErrInvalidDimension{Dimension: inputs}
	}
	if outputs <= 0 {
		return nil, &ErrInvalidDimension{Dimension: outputs}
	}

	o := options{
		parallelism: 1,
		logger:      NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	if o.source == nil {
		src := mt19937.New()
		src.Seed(time.Now().UnixNano())
		o.source = src
	}

	columns := make([]*Column, outputs)
	for j := range columns {
		columns[j] = &Column{bits: bitvec.New(inputs)}
	}

	return &Layer{
		inputs:      inputs,
		outputs:     outputs,
		threshold:   o.threshold,
		params:      o.params,
		parallelism: o.parallelism,
		logger:      o.logger.WithLayer(inputs, outputs),
		columns:     columns,
		src:         o.source,
	}, nil
}

// Inputs returns the number of input cells.
func (l *Layer) Inputs() int { return l.inputs }

// Outputs returns the number of output cells.
func (l *Layer) Outputs() int { return l.outputs }

// Params returns the layer's mutable RPReLU parameters.
func (l *Layer) Params() *activation.Params[int32] { return &l.params }

// Column returns the handle for output cell j.
func (l *Layer) Column(j int) (*Column, error) {
	if j < 0 || j >= l.outputs {
		return nil, &ErrInvalidColumn{Index: j, Columns: l.outputs}
	}
	return l.columns[j], nil
}

// SetColumn overwrites the weight bits of output cell j, typically with
// an externally trained weight table. bits must hold exactly
// bitvec.WordsFor(inputs) words.
func (l *Layer) SetColumn(j int, bits bitvec.Vector) error {
	if j < 0 || j >= l.outputs {
		return &ErrInvalidColumn{Index: j, Columns: l.outputs}
	}
	if len(bits) != bitvec.WordsFor(l.inputs) {
		return &ErrDimensionMismatch{Expected: bitvec.WordsFor(l.inputs), Actual: len(bits)}
	}

	c := l.columns[j]
	c.mu.Lock()
	copy(c.bits, bits)
	c.mu.Unlock()
	return nil
}

// Forward binarizes a fixed-point input vector with the layer threshold
// and computes the linear pre-activation of every output cell. The
// returned slice has one int32 per output cell.
func (l *Layer) Forward(ctx context.Context, values []int8) ([]int32, error) {
	if len(values) != l.inputs {
		err := &ErrDimensionMismatch{Expected: l.inputs, Actual: len(values)}
		l.logger.LogForward(l.parallelism, err)
		return nil, err
	}

	// The layer allocates the activation buffer itself, so padding bits
	// past the logical length are zero and weight padding cannot leak
	// into the result.
	x := bitvec.New(l.inputs)
	bitvec.Binarize(x, values, l.threshold)

	z := make([]int32, l.outputs)
	err := l.forEachColumn(ctx, func(j int) {
		c := l.columns[j]
		c.mu.RLock()
		z[j] = kernel.Forward(c.bits, x)
		c.mu.RUnlock()
	})

	l.logger.LogForward(l.parallelism, err)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// Activate applies the layer's RPReLU to a pre-activation vector.
func (l *Layer) Activate(z []int32) []int32 {
	out := make([]int32, len(z))
	for i, v := range z {
		out[i] = l.params.Apply(v)
	}
	return out
}

// ActivationGrad evaluates the RPReLU derivative at every pre-activation,
// for propagating errors through the activation.
func (l *Layer) ActivationGrad(z []int32) []int32 {
	out := make([]int32, len(z))
	for i, v := range z {
		out[i] = l.params.Derive(v)
	}
	return out
}

// Backward distributes per-output-cell errors back onto the input cells:
// inputErr[i] = sum over cells j of sign(weight bit j,i) * outputErr[j].
//
// With parallelism > 1 the columns are partitioned across workers, each
// accumulating into its own buffer, and the partials are reduced at the
// end; the shared-accumulator hazard never reaches the caller.
func (l *Layer) Backward(ctx context.Context, outputErr []int) ([]int, error) {
	if len(outputErr) != l.outputs {
		err := &ErrDimensionMismatch{Expected: l.outputs, Actual: len(outputErr)}
		l.logger.LogBackward(l.parallelism, err)
		return nil, err
	}

	workers := min(l.parallelism, l.outputs)
	partials := make([][]int, workers)
	for w := range partials {
		partials[w] = make([]int, l.inputs)
	}

	chunk := (l.outputs + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, l.outputs)
		acc := partials[w]
		g.Go(func() error {
			for j := start; j < end; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				c := l.columns[j]
				c.mu.RLock()
				kernel.Backward(c.bits, l.inputs, outputErr[j], acc)
				c.mu.RUnlock()
			}
			return nil
		})
	}

	err := g.Wait()
	l.logger.LogBackward(l.parallelism, err)
	if err != nil {
		return nil, err
	}

	inputErr := partials[0]
	for _, p := range partials[1:] {
		for i, v := range p {
			inputErr[i] += v
		}
	}
	return inputErr, nil
}

// Update rewrites every weight column in place from the input vector and
// the per-output-cell errors, using the binary update rule in
// kernel.UpdateWeights. scale folds the learning rate and binarization
// magnitude into one integer.
func (l *Layer) Update(ctx context.Context, values []int8, outputErr []int, scale int) error {
	if len(values) != l.inputs {
		err := &ErrDimensionMismatch{Expected: l.inputs, Actual: len(values)}
		l.logger.LogUpdate(scale, err)
		return err
	}
	if len(outputErr) != l.outputs {
		err := &ErrDimensionMismatch{Expected: l.outputs, Actual: len(outputErr)}
		l.logger.LogUpdate(scale, err)
		return err
	}

	err := l.forEachColumn(ctx, func(j int) {
		c := l.columns[j]
		c.mu.Lock()
		kernel.UpdateWeights(c.bits, values, outputErr[j], scale)
		c.mu.Unlock()
	})

	l.logger.LogUpdate(scale, err)
	return err
}

// Perturb runs the entropy pass over every weight word: a positive rate
// randomly sets bits, a negative rate randomly clears them, zero is a
// no-op. The configured random source is serialized here, so Perturb is
// safe to call concurrently with the other passes.
func (l *Layer) Perturb(rate float64) error {
	if l.src == nil {
		l.logger.LogPerturb(rate, ErrNoRandomSource)
		return ErrNoRandomSource
	}

	l.srcMu.Lock()
	defer l.srcMu.Unlock()

	for _, c := range l.columns {
		c.mu.Lock()
		for i := range c.bits {
			c.bits[i] = kernel.Entropy(c.bits[i], rate, l.src)
		}
		c.mu.Unlock()
	}

	l.logger.LogPerturb(rate, nil)
	return nil
}

// forEachColumn runs fn for every column index, serially for
// parallelism < 2 and through an errgroup otherwise. fn must lock the
// column it touches.
func (l *Layer) forEachColumn(ctx context.Context, fn func(j int)) error {
	if l.parallelism < 2 {
		for j := 0; j < l.outputs; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(j)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.parallelism)
	for j := 0; j < l.outputs; j++ {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(j)
			return nil
		})
	}
	return g.Wait()
}
