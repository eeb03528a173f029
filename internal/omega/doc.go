// Package omega implements integer types extended with infinity sentinels.
//
// Int[N] extends a signed integer type with positive and negative infinity
// (ω and -ω); UInt[N] extends an unsigned integer type with a single
// infinity. Every arithmetic operation comes in a checked form returning
// (value, error) and an unchecked form that panics where the checked form
// would fail.
package omega
