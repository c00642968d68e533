//go:build conlog_trace && !conlog_disable

package conlog

const ActiveLevel = LVL_TRACE
