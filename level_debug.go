//go:build conlog_debug && !conlog_disable && !conlog_trace

package conlog

const ActiveLevel = LVL_DEBUG
