package main

import "go.uber.org/zap"

var dumpLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	dumpLog = l
}
