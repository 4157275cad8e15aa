package param

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHarvest_IsValid(t *testing.T) {
	valid := func() *Harvest {
		return &Harvest{
			Url:         "https://jobs.bytedance.com/campus/position/list",
			ApiPattern:  "/api/v1/search/job/posts",
			Limit:       50,
			PageTimeout: DefaultPageTimeout,
		}
	}
	assert.True(t, valid().IsValid())

	h := valid()
	h.Url = ""
	assert.False(t, h.IsValid())

	h = valid()
	h.Limit = 0
	assert.False(t, h.IsValid())

	h = valid()
	h.PageTimeout = -time.Second
	assert.False(t, h.IsValid())

	h = valid()
	h.PageTimeout = 0
	assert.True(t, h.IsValid())
	assert.Equal(t, DefaultPageTimeout, h.Timeout())

	h = valid()
	h.PagesPerSecond = -1
	assert.False(t, h.IsValid())
}
