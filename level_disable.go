//go:build conlog_disable

package conlog

const ActiveLevel = LVL_NONE
