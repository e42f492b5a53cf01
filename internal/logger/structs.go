package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled"`
	UseConsoleWriter bool
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	AccessLog        string `mapstructure:"access"`
	AccessMaxSize    int    `mapstructure:"accessMaxSize"`
	AccessMaxBackups int    `mapstructure:"accessMaxBackups"`
	AccessMaxAge     int    `mapstructure:"accessMaxAge"`

	ErrorLog        string `mapstructure:"error"`
	ErrorMaxSize    int    `mapstructure:"errorMaxSize"`
	ErrorMaxBackups int    `mapstructure:"errorMaxBackups"`
	ErrorMaxAge     int    `mapstructure:"errorMaxAge"`

	InfoLog        string `mapstructure:"info"`
	InfoMaxSize    int    `mapstructure:"infoMaxSize"`
	InfoMaxBackups int    `mapstructure:"infoMaxBackups"`
	InfoMaxAge     int    `mapstructure:"infoMaxAge"`

	TraceLog        string `mapstructure:"trace"`
	TraceMaxSize    int    `mapstructure:"traceMaxSize"`
	TraceMaxBackups int    `mapstructure:"traceMaxBackups"`
	TraceMaxAge     int    `mapstructure:"traceMaxAge"`

	WarnLog        string `mapstructure:"warn"`
	WarnMaxSize    int    `mapstructure:"warnMaxSize"`
	WarnMaxBackups int    `mapstructure:"warnMaxBackups"`
	WarnMaxAge     int    `mapstructure:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole if true the webservice access log is written to the console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	// SlowQueryThreshold in milliseconds, statements running longer are logged as warnings. 0 disables.
	SlowQueryThreshold int

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	// File based logging with rotation.
	File LogFile `mapstructure:"file"`
}
