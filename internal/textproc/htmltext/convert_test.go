package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "empty",
			html: "  ",
			want: "",
		},
		{
			name: "plain text keeps line breaks",
			html: "团队介绍：广告平台\n1、负责服务端开发\n2、参与架构设计",
			want: "团队介绍：广告平台\n1、负责服务端开发\n2、参与架构设计",
		},
		{
			name: "paragraphs and inline formatting",
			html: "<p>Hello <strong>world</strong></p><p>Second</p>",
			want: "Hello world\n\nSecond",
		},
		{
			name: "ordered list",
			html: "<ol><li>Write code</li><li>Review code</li></ol>",
			want: "1. Write code\n2. Review code",
		},
		{
			name: "unordered list with layout whitespace",
			html: "<ul>\n  <li>Go</li>\n  <li>Redis</li>\n</ul>",
			want: "- Go\n- Redis",
		},
		{
			name: "heading and line breaks",
			html: "<h2>职位描述</h2><div>line1<br>line2</div>",
			want: "## 职位描述\n\nline1\nline2",
		},
		{
			name: "scripts dropped",
			html: "<p>a</p><script>alert(1)</script><style>p{}</style>",
			want: "a",
		},
		{
			name: "entities decoded",
			html: "&lt;Go&gt; &amp; Redis",
			want: "<Go> & Redis",
		},
		{
			name: "blank lines collapsed",
			html: "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "spaces collapsed",
			html: "  多个   空格\t 测试 ",
			want: "多个 空格 测试",
		},
	}

	conv := NewConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
