//go:build conlog_warn && !conlog_disable && !conlog_trace && !conlog_debug && !conlog_info

package conlog

const ActiveLevel = LVL_WARN
