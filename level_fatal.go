//go:build conlog_fatal && !conlog_disable && !conlog_trace && !conlog_debug && !conlog_info && !conlog_warn && !conlog_error

package conlog

const ActiveLevel = LVL_FATAL
