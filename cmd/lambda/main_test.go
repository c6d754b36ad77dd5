package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandlerName(t *testing.T) {
	for _, name := range []string{"method", "greet", "path", "items"} {
		assert.Equal(t, name, handlerName(name, zap.NewNop()))
	}

	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)
	assert.Equal(t, "method", handlerName("bootstrap", log))
	assert.Equal(t, "method", handlerName("", log))

	entries := logs.FilterMessage("unknown handler, using default").All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "bootstrap", entries[0].ContextMap()["handler"])
	}
}
