package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	OutputDir   string
	BatchFile   string
	FixtureFile string
	Stdin       bool
	Explain     bool
	Archive     bool

	// Word lookup flags
	Word        string
	Source      string
	OpenAIModel string
	ESpeakVoice string
	ListModels  bool

	// Cache flags
	CachePath string
	NoCache   bool
	ListCache bool
	Forget    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Source:      "auto",
		OpenAIModel: "gpt-4o-mini",
		ESpeakVoice: "en-gb",
	}
}
