// Package logging provides structured logging for compoundword runs.
//
// It wraps log/slog with a JSON handler so a run can be inspected after the
// fact: how many lines were read and skipped, how long the index took to
// build, which word won and in which collect mode.
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use. The analysis
// workers share one logger; child loggers created with With* share the
// underlying writer.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithPhase("load").WithInput("words.txt").Info("word list loaded", "words", 173528)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"word list loaded","phase":"load","input":"words.txt","words":173528}
//
// An empty dir sends logs to stderr.
//
// # Log Rotation
//
//	logger, err := logging.NewLogger(dir, "DEBUG", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	})
//
// Rotated files are named compoundword.log.1, compoundword.log.2 and so on,
// .1 being the most recent. With Compress set they gain a .gz suffix.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: warn
//	  dir: ""
//	  max_size_mb: 10
//	  max_backups: 3
//	  compress: false
//
// Use [NopLogger] in tests and when logging is disabled.
package logging
