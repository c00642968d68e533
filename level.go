package conlog

/*
ActiveLevel is resolved from build tags, the first matching tag of

	conlog_disable, conlog_trace, conlog_debug, conlog_info,
	conlog_warn, conlog_error, conlog_fatal

wins, and no tag at all means DEFAULT_LOG_LEVEL. For example

	go build -tags conlog_warn ./...

builds every package-level Trace/Debug/Info call down to nothing.
*/

// Fails to compile when ActiveLevel is not a valid threshold.
const _ = uint8(LVL_NONE - ActiveLevel)

// ActiveEnabled reports whether statements of the given level survive the
// build-time threshold. With a constant argument the result is constant too.
func ActiveEnabled(level LogLevel) bool {
	return level < LVL_NONE && level >= ActiveLevel
}
