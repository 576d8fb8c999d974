// Package logger configures the structured diagnostic logger.
//
// Diagnostics (decode metadata, method parameters, timing) go to stderr
// through zerolog's console writer; the tool's result lines are not logging
// and print plainly on stdout. The IMAGE_ENTROPY_LOG_LEVEL environment
// variable selects verbosity: debug, info (default), warn, or error.
package logger
