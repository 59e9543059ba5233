package main

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

// setupLogging configures the global logger; output never goes to stdout
func setupLogging(out io.Writer, enableDebug bool) {
	log.SetOutput(out)
	log.SetLevel(log.WarnLevel)
	log.SetReportCaller(false)

	formatter := &log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	}

	if enableDebug {
		log.SetLevel(log.DebugLevel)
		// eg: func=fromEntries file="proc.go:81"
		formatter.CallerPrettyfier = func(f *runtime.Frame) (string, string) {
			s := strings.Split(f.Function, ".")
			funcname := s[len(s)-1]
			filename := path.Base(f.File)
			return funcname, fmt.Sprintf("%s:%d", filename, f.Line)
		}
		log.SetReportCaller(true)
	}

	log.SetFormatter(formatter)
}
