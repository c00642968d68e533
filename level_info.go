//go:build conlog_info && !conlog_disable && !conlog_trace && !conlog_debug

package conlog

const ActiveLevel = LVL_INFO
