package conlog

/*
Package-level shortcuts bound to Default. Every function tests the build-time
ActiveLevel first; for levels the build disables the test is a constant and
the whole call is compiled away (arguments without side effects included).
*/

// Trace..Fatal open a streaming statement on Default.
func Trace() Emitter {
	if !ActiveEnabled(LVL_TRACE) {
		return inert
	}
	return Default.Lvl(LVL_TRACE)
}

func Debug() Emitter {
	if !ActiveEnabled(LVL_DEBUG) {
		return inert
	}
	return Default.Lvl(LVL_DEBUG)
}

func Info() Emitter {
	if !ActiveEnabled(LVL_INFO) {
		return inert
	}
	return Default.Lvl(LVL_INFO)
}

func Warn() Emitter {
	if !ActiveEnabled(LVL_WARN) {
		return inert
	}
	return Default.Lvl(LVL_WARN)
}

func Error() Emitter {
	if !ActiveEnabled(LVL_ERROR) {
		return inert
	}
	return Default.Lvl(LVL_ERROR)
}

func Fatal() Emitter {
	if !ActiveEnabled(LVL_FATAL) {
		return inert
	}
	return Default.Lvl(LVL_FATAL)
}

// LogTrace..LogFatal write vals as one statement on Default.
func LogTrace(vals ...any) {
	if ActiveEnabled(LVL_TRACE) {
		Default.Log(LVL_TRACE, vals...)
	}
}

func LogDebug(vals ...any) {
	if ActiveEnabled(LVL_DEBUG) {
		Default.Log(LVL_DEBUG, vals...)
	}
}

func LogInfo(vals ...any) {
	if ActiveEnabled(LVL_INFO) {
		Default.Log(LVL_INFO, vals...)
	}
}

func LogWarn(vals ...any) {
	if ActiveEnabled(LVL_WARN) {
		Default.Log(LVL_WARN, vals...)
	}
}

func LogError(vals ...any) {
	if ActiveEnabled(LVL_ERROR) {
		Default.Log(LVL_ERROR, vals...)
	}
}

func LogFatal(vals ...any) {
	if ActiveEnabled(LVL_FATAL) {
		Default.Log(LVL_FATAL, vals...)
	}
}

// Tracef..Fatalf write a fmt.Sprintf formatted statement on Default.
func Tracef(format string, args ...any) {
	if ActiveEnabled(LVL_TRACE) {
		Default.Logf(LVL_TRACE, format, args...)
	}
}

func Debugf(format string, args ...any) {
	if ActiveEnabled(LVL_DEBUG) {
		Default.Logf(LVL_DEBUG, format, args...)
	}
}

func Infof(format string, args ...any) {
	if ActiveEnabled(LVL_INFO) {
		Default.Logf(LVL_INFO, format, args...)
	}
}

func Warnf(format string, args ...any) {
	if ActiveEnabled(LVL_WARN) {
		Default.Logf(LVL_WARN, format, args...)
	}
}

func Errorf(format string, args ...any) {
	if ActiveEnabled(LVL_ERROR) {
		Default.Logf(LVL_ERROR, format, args...)
	}
}

func Fatalf(format string, args ...any) {
	if ActiveEnabled(LVL_FATAL) {
		Default.Logf(LVL_FATAL, format, args...)
	}
}

// Tracet..Fatalt write a rendered template on Default, see Logger.Logt.
func Tracet(template string, args ...any) error {
	if !ActiveEnabled(LVL_TRACE) {
		return nil
	}
	return Default.Logt(LVL_TRACE, template, args...)
}

func Debugt(template string, args ...any) error {
	if !ActiveEnabled(LVL_DEBUG) {
		return nil
	}
	return Default.Logt(LVL_DEBUG, template, args...)
}

func Infot(template string, args ...any) error {
	if !ActiveEnabled(LVL_INFO) {
		return nil
	}
	return Default.Logt(LVL_INFO, template, args...)
}

func Warnt(template string, args ...any) error {
	if !ActiveEnabled(LVL_WARN) {
		return nil
	}
	return Default.Logt(LVL_WARN, template, args...)
}

func Errort(template string, args ...any) error {
	if !ActiveEnabled(LVL_ERROR) {
		return nil
	}
	return Default.Logt(LVL_ERROR, template, args...)
}

func Fatalt(template string, args ...any) error {
	if !ActiveEnabled(LVL_FATAL) {
		return nil
	}
	return Default.Logt(LVL_FATAL, template, args...)
}
