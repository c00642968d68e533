package conlog

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

/*
BraceFormat is the default FormatFunc. Replacement fields are

	{}        next argument
	{N}       argument N (zero-based)
	{:verb}   next argument formatted with %verb, e.g. {:x}, {:08.3f}
	{N:verb}  argument N formatted with %verb

Automatic and manual indexing cannot be mixed in one template. Extra
arguments are ignored. A '{' without a matching '}' is written as is, while
any other text between braces is an error, so literal braces belong in the
arguments:

	l.Infot("payload: {}", `{"id":1}`)
*/
func BraceFormat(template string, args ...any) (string, error) {
	if !strings.Contains(template, "{") {
		return template, nil
	}
	next := 0
	auto, manual := false, false
	return fasttemplate.ExecuteFuncStringWithErr(template, "{", "}", func(w io.Writer, tag string) (int, error) {
		index, verb, _ := strings.Cut(tag, ":")
		var i int
		if index == "" {
			if manual {
				return 0, errors.New(_ERROR_MESSAGE_MIXED_INDEXING)
			}
			auto = true
			i = next
			next++
		} else {
			if auto {
				return 0, errors.New(_ERROR_MESSAGE_MIXED_INDEXING)
			}
			manual = true
			n, err := strconv.Atoi(index)
			if err != nil {
				return 0, fmt.Errorf("%s: `{%s}`", _ERROR_MESSAGE_BAD_FIELD, tag)
			}
			if n < 0 {
				return 0, fmt.Errorf("%s: `{%s}`", _ERROR_MESSAGE_BAD_ARG_INDEX, tag)
			}
			i = n
		}
		if i >= len(args) {
			return 0, fmt.Errorf("%s: `{%s}` needs argument %d, %d given", _ERROR_MESSAGE_MISSING_ARG, tag, i, len(args))
		}
		if verb == "" {
			return fmt.Fprint(w, args[i])
		}
		if !validVerb(verb) {
			return 0, fmt.Errorf("%s: `{%s}`", _ERROR_MESSAGE_BAD_FIELD, tag)
		}
		return fmt.Fprintf(w, "%"+verb, args[i])
	})
}

// PrintfFormat adapts fmt.Sprintf to FormatFunc. It never fails; fmt marks
// bad verbs and missing arguments in the output instead.
func PrintfFormat(template string, args ...any) (string, error) {
	return fmt.Sprintf(template, args...), nil
}

// validVerb accepts fmt flags, width and precision followed by one verb letter.
func validVerb(verb string) bool {
	last := verb[len(verb)-1]
	if !('a' <= last && last <= 'z' || 'A' <= last && last <= 'Z') {
		return false
	}
	for i := 0; i < len(verb)-1; i++ {
		if !strings.ContainsRune("+-# 0123456789.", rune(verb[i])) {
			return false
		}
	}
	return true
}
