package config

import (
	"github.com/spf13/viper"
)

// Logger holds the logging configuration.
type Logger struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
	// Format is text or json.
	Format string `json:"format" yaml:"format"`
	// Output is stdout, stderr or file.
	Output string `json:"output" yaml:"output"`
	// OutputFile is the log file path when Output is file.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// getLoggerConfig reads the logging configuration.
func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      getStringOrDefault(v, "logger.level", "info"),
		Format:     getStringOrDefault(v, "logger.format", "text"),
		Output:     getStringOrDefault(v, "logger.output", "stdout"),
		OutputFile: v.GetString("logger.output_file"),
	}
}
