package inventory

// IceLeftover returns the running count of unreturned ice bags after a delivery.
//
// The result is not clamped: a negative leftover means more bags came back
// than were ever recorded out, and is kept for the operator to judge.
func IceLeftover(previousLeftover, quantity, collected int) int {
	return previousLeftover + quantity - collected
}

// IceCount is the operator's input for an ice delivery.
type IceCount struct {
	PreviousLeftover int
	Collected        int
}
