package obj

// Input is the held state of every key the game reads, sampled once per
// update. Edge detection is left to the consumer.
type Input struct {
	Left        bool
	Right       bool
	Jump        bool
	Shoot       bool
	Confirm     bool
	ToggleMusic bool
	Quit        bool
	Return      bool
}
