//go:build conlog_error && !conlog_disable && !conlog_trace && !conlog_debug && !conlog_info && !conlog_warn

package conlog

const ActiveLevel = LVL_ERROR
