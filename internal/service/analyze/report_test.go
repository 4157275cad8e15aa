package analyze

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	tally := Aggregate([]Document{
		{Content: "Go Redis"},
		{Content: "Golang"},
		{Content: "Redis"},
		{Content: "Python"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, tally))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Analyzed 4 job postings.\n"))
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "25.0%")
	// 降序
	goIdx := strings.Index(out, "│ Go ")
	redisIdx := strings.Index(out, "Redis")
	pyIdx := strings.Index(out, "Python")
	require.NotEqual(t, -1, goIdx)
	assert.Less(t, goIdx, redisIdx)
	assert.Less(t, redisIdx, pyIdx)
}
