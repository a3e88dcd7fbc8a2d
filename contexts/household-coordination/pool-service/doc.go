// Package poolservice manages household pools and their membership inside
// the household-coordination context. Pools are joined through shareable
// invite codes; the creator is the pool admin and can rotate the code.
package poolservice
