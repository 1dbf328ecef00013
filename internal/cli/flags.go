package cli

// DefaultInput is the input dictionary read when no path is given.
const DefaultInput = "cmudict.dict"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile string
	Output  string
	Verbose bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{}
}
