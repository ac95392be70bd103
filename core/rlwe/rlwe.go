// Package rlwe implements key generation, encryption and decryption for a
// demo-grade R-LWE scheme over the cyclic ring Z_q[x]/(x^n - 1), with plaintexts
// recovered modulo a plaintext modulus t.
//
// The scheme keeps the following approximations: secrets and errors default to
// the set {0, 1}, ciphertexts are (c0, c1) = (a*r + m, b*r) with a uniform mask r,
// and decryption computes (c0 + c1*s) mod t without checking the noise against q/(2t).
package rlwe
