package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	BatchFile    string
	Save         bool
	Breakdown    bool
	Verbose      bool
	GenerateAnki bool
	AnkiFile     string
	Archive      bool
	ListModels   bool

	// History flags
	DBPath    string
	History   int
	NoHistory bool

	// Language model flags
	Explain         bool
	Translate       bool
	ExplainProvider string
	OpenAIModel     string
	GeminiModel     string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AnkiFile:        "anki_import.csv",
		ExplainProvider: "openai",
		OpenAIModel:     "gpt-4o",
		GeminiModel:     "gemini-2.0-flash",
	}
}
