package bgv

import (
	"fmt"

	"github.com/YanivDan/bgv/core/rlwe"
	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/schemes"
)

var _ schemes.Evaluator = (*Evaluator)(nil)

// Evaluator is a struct that holds the necessary elements to perform the homomorphic operations between ciphertexts.
// It holds no key: multiplication is never followed by a relinearization.
type Evaluator struct {
	parameters Parameters
}

// NewEvaluator creates a new [Evaluator], that can be used to do homomorphic
// operations on ciphertexts encrypted under the given parameters.
func NewEvaluator(parameters Parameters) *Evaluator {
	return &Evaluator{parameters: parameters}
}

// GetParameters returns a pointer to the underlying bgv.[Parameters].
func (eval Evaluator) GetParameters() *Parameters {
	return &eval.parameters
}

// AddNew adds op1 to op0 and returns the result in a newly created ciphertext (c0+d0, c1+d1).
// Correctness holds while the summed noise of both operands stays below q/(2t).
func (eval Evaluator) AddNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error) {
	if err = eval.checkBinary(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot AddNew: %w", err)
	}
	return add(op0, op1), nil
}

// SubNew subtracts op1 to op0 and returns the result in a newly created ciphertext (c0-d0, c1-d1).
func (eval Evaluator) SubNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error) {
	if err = eval.checkBinary(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot SubNew: %w", err)
	}
	return &rlwe.Ciphertext{
		C0: op0.C0.Sub(op1.C0),
		C1: op0.C1.Sub(op1.C1),
	}, nil
}

// MulNew multiplies op0 with op1 and returns the result in a newly created ciphertext:
//
//	(c0*d0, c0*d1 + c1*d0)
//
// The c1*d1 term is dropped and the output is not relinearized, so it keeps two components.
// This is an approximation of the tensor product: decryption of the output is in general not
// the product of the plaintexts.
func (eval Evaluator) MulNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error) {
	if err = eval.checkBinary(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot MulNew: %w", err)
	}
	if opOut, err = mul(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot MulNew: %w", err)
	}
	return
}

func (eval Evaluator) checkBinary(op0, op1 *rlwe.Ciphertext) error {

	if op0 == nil || op1 == nil {
		return fmt.Errorf("operands cannot be nil")
	}

	N := eval.parameters.N()

	for _, ct := range []*rlwe.Ciphertext{op0, op1} {
		for _, c := range []ring.Poly{ct.C0, ct.C1} {
			if c.N() != N {
				return &ring.LengthMismatchError{Left: c.N(), Right: N}
			}
		}
	}

	return nil
}

func add(op0, op1 *rlwe.Ciphertext) *rlwe.Ciphertext {
	return &rlwe.Ciphertext{
		C0: op0.C0.Add(op1.C0),
		C1: op0.C1.Add(op1.C1),
	}
}

func mul(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error) {

	var c0d0, c0d1, c1d0 ring.Poly

	if c0d0, err = op0.C0.Mul(op1.C0); err != nil {
		return
	}

	if c0d1, err = op0.C0.Mul(op1.C1); err != nil {
		return
	}

	if c1d0, err = op0.C1.Mul(op1.C0); err != nil {
		return
	}

	return &rlwe.Ciphertext{C0: c0d0, C1: c0d1.Add(c1d0)}, nil
}
