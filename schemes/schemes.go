// Package schemes contains the implemented cryptosystems.
package schemes

import (
	"github.com/YanivDan/bgv/core/rlwe"
	"github.com/YanivDan/bgv/ring"
)

// Encoder is a scheme-agnostic encoding interface.
type Encoder interface {
	Encode(values interface{}) (pt ring.Poly, err error)
	Decode(pt ring.Poly, values interface{}) (err error)
}

// Evaluator is a scheme-agnostic evaluator interface.
type Evaluator interface {
	AddNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error)
	SubNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error)
	MulNew(op0, op1 *rlwe.Ciphertext) (opOut *rlwe.Ciphertext, err error)
}
