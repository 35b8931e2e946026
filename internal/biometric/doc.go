// Package biometric implements the descriptor matching core of the
// three-factor authentication flow: the face and voice comparators, the
// threshold policy, and the validation gate every inbound descriptor must
// pass before it can be matched or enrolled.
//
// The comparators are pure, deterministic, side-effect-free functions that
// run in O(descriptor length) time. Degenerate inputs (mismatched lengths,
// zero-magnitude vectors) produce defined sentinel scores that guarantee a
// mismatch rather than panicking or returning an error.
package biometric
