// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Levels(t *testing.T) {
	tests := []struct {
		env       string
		wantLevel log.Level
		wantTrace bool
	}{
		{env: "", wantLevel: log.ErrorLevel},
		{env: "bogus", wantLevel: log.ErrorLevel},
		{env: "debug", wantLevel: log.DebugLevel},
		{env: "INFO", wantLevel: log.InfoLevel},
		{env: "warn", wantLevel: log.WarnLevel},
		{env: "trace", wantLevel: log.DebugLevel, wantTrace: true},
	}

	for _, tt := range tests {
		t.Run("env_"+tt.env, func(t *testing.T) {
			t.Setenv("IDXCTL_LOG", tt.env)
			InitLogger()

			logger, ok := log.Log.(*log.Logger)
			if assert.True(t, ok) {
				assert.Equal(t, tt.wantLevel, logger.Level)
			}
			assert.Equal(t, tt.wantTrace, traceEnabled)
		})
	}
}

func TestHandler_Format(t *testing.T) {
	t.Setenv("IDXCTL_LOG", "trace")
	InitLogger()

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Debugf("kept %d", 3)
	Tracef("walking %s", "logs-1")
	WithField("index", ".kibana").Info("guarded")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 3) {
		assert.Contains(t, string(lines[0]), " D kept 3")
		assert.Contains(t, string(lines[1]), " T walking logs-1")
		assert.Contains(t, string(lines[2]), " I guarded index=.kibana")
	}
}
