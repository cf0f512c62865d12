package mesomie

// Order limits
const (
	maxOrders = 1 << 20 // Maximum multipole order nmax accepted by Validate
)

// Sweep defaults
const (
	defaultGridPoints = 1 // Grid points when a range omits "points"
)
