package calculation

import "time"

// seedFunc supplies the seed for Monte Carlo runs when the
// configuration asks for a random one (seed 0). Tests override it to
// pin the draw.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc replaces the seed provider. Pass a fixed-value func in
// tests and restore the previous provider afterwards.
func SetSeedFunc(f func() int64) { seedFunc = f }
