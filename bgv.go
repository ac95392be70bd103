/*
Package bgv is a small, pure Go implementation of a BGV-like homomorphic encryption scheme
over the cyclic polynomial ring Z_q[x]/(x^n - 1).

It provides modular polynomial arithmetic (ring), key generation, encryption and decryption
(core/rlwe), and homomorphic addition and a non-relinearized multiplication (schemes/bgv).
The scheme is demonstration-grade: parameters offer no security, noise is not tracked, and the
product of two ciphertexts omits the c1*d1 term.
*/
package bgv
