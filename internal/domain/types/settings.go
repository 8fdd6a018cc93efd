package types

// Settings are the user preferences kept in the config file.
//
// Session state is never stored here.
type Settings struct {
	RatesURL     string `yaml:"rates_url,omitempty"`
	RatesTimeout string `yaml:"rates_timeout,omitempty"`
	Mode         string `yaml:"mode,omitempty"`
	Category     string `yaml:"category,omitempty"`
	From         string `yaml:"from,omitempty"`
	To           string `yaml:"to,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}
