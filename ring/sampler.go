package ring

import (
	"fmt"

	"github.com/YanivDan/bgv/utils"
	"github.com/YanivDan/bgv/utils/sampling"
)

const (
	uniformDistName  = "Uniform"
	smallSetDistName = "SmallSet"
)

// Sampler is an interface for random polynomial samplers.
// ReadNew returns a new polynomial of the sampler's ring whose coefficients follow
// the sampler's distribution, or a [*sampling.RandomnessError] if the underlying
// PRNG fails.
type Sampler interface {
	ReadNew() (pol Poly, err error)
}

// DistributionParameters is an interface for distribution
// parameters in the ring.
// There are two implementations of this interface:
//   - Uniform for sampling polynomials with uniformly random
//     coefficients in the ring.
//   - SmallSet for sampling polynomials with coefficients drawn
//     uniformly from a small set of integers.
type DistributionParameters interface {
	// Type returns a string representation of the distribution name.
	Type() string
	mustBeDist()
}

// Uniform represents the parameters of a uniform distribution
// i.e., with coefficients uniformly distributed in the given ring.
type Uniform struct{}

// SmallSet represents a distribution where each coefficient is drawn uniformly
// and independently from Values. Negative values are mapped to q - |v|.
type SmallSet struct {
	Values []int64
}

var (
	// BinarySet samples coefficients in {0, 1}.
	BinarySet = SmallSet{Values: []int64{0, 1}}

	// TernarySet samples coefficients in {-1, 0, 1}.
	TernarySet = SmallSet{Values: []int64{-1, 0, 1}}
)

// NewSampler instantiates a new [Sampler] for the distribution X over baseRing.
func NewSampler(prng sampling.PRNG, baseRing *Ring, X DistributionParameters) (Sampler, error) {
	switch X := X.(type) {
	case Uniform:
		return NewUniformSampler(prng, baseRing), nil
	case SmallSet:
		return NewSmallSetSampler(prng, baseRing, X)
	default:
		return nil, fmt.Errorf("invalid distribution: want ring.Uniform or ring.SmallSet but have %T", X)
	}
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
}

func (d Uniform) Type() string {
	return uniformDistName
}

func (d Uniform) mustBeDist() {}

func (d SmallSet) Type() string {
	return smallSetDistName
}

func (d SmallSet) mustBeDist() {}

// Validate checks that the set is non-empty and that every value
// is smaller than q in absolute value.
func (d SmallSet) Validate(q uint64) error {

	if len(d.Values) == 0 {
		return fmt.Errorf("invalid small set: set is empty")
	}

	for i, v := range d.Values {
		if mag := absInt64(v); mag >= q {
			return fmt.Errorf("invalid small set: |Values[%d]|=%d is not smaller than q=%d", i, mag, q)
		}
	}

	return nil
}

// Equal returns true if both sets hold the same values in the same order.
func (d SmallSet) Equal(other SmallSet) bool {
	return utils.EqualSlice(d.Values, other.Values)
}

func (d SmallSet) String() string {
	return fmt.Sprintf("%v", d.Values)
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
