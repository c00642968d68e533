//go:build !conlog_disable && !conlog_trace && !conlog_debug && !conlog_info && !conlog_warn && !conlog_error && !conlog_fatal

package conlog

const ActiveLevel = DEFAULT_LOG_LEVEL
