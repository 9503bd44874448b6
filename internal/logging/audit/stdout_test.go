package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"focusboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSTDOUT(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		var buf bytes.Buffer
		a := NewLoggerSTDOUT(logging.NewLogger(&buf, "info"), true)

		a.Log(context.Background(), "task.create", "tasks:01J", map[string]interface{}{"title": "Write report"})

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "AUDIT EVENT", entry["msg"])
		assert.Equal(t, "task.create", entry["audit_action"])
		assert.Equal(t, "tasks:01J", entry["audit_resource"])
		assert.Equal(t, "Write report", entry["detail.title"])
	})

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		a := NewLoggerSTDOUT(logging.NewLogger(&buf, "info"), false)

		a.Log(context.Background(), "task.delete", "tasks:01J", nil)
		assert.Empty(t, buf.String())
	})

	t.Run("Nop", func(t *testing.T) {
		var l Logger = Nop{}
		l.Log(context.Background(), "task.delete", "tasks:01J", nil)
	})
}
