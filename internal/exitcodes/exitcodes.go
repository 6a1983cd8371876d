package exitcodes

// Exit codes of the reset command. These form the contract with CI
// pipelines and scripts that shell out to it.
const (
	Success       = 0 // Successful execution
	InvalidConfig = 2 // Configuration file or flags invalid
	RuntimeError  = 4 // Runtime error during execution
)
