package chrome

import (
	"sync"
	"testing"

	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchResponse(t *testing.T) {
	const pattern = "/api/v1/search/job/posts"
	tests := []struct {
		name   string
		url    string
		status int
		want   bool
	}{
		{"match", "https://jobs.bytedance.com/api/v1/search/job/posts?keyword=", 200, true},
		{"other api", "https://jobs.bytedance.com/api/v1/config", 200, false},
		{"not ok", "https://jobs.bytedance.com/api/v1/search/job/posts", 500, false},
		{"redirect", "https://jobs.bytedance.com/api/v1/search/job/posts", 302, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchResponse(tt.url, pattern, tt.status))
		})
	}
}

func TestOneShot_DeliversFirstOnly(t *testing.T) {
	shot := newOneShot()

	var wg sync.WaitGroup
	delivered := make(chan bool, 10)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			delivered <- shot.deliver(&types.NetworkResponse{Url: string(rune('a' + i))})
		}()
	}
	wg.Wait()
	close(delivered)

	count := 0
	for ok := range delivered {
		if ok {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, shot.ch, 1)
}

func TestRelease_Idempotent(t *testing.T) {
	calls := 0
	r := release(func() { calls++ })
	r()
	r()
	assert.Equal(t, 1, calls)
}
