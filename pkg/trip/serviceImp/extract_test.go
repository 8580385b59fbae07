package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "json fence",
			in:   "好的,计划如下:\n```json\n{\"city\":\"北京\"}\n```\n祝旅途愉快!",
			want: `{"city":"北京"}`,
		},
		{
			name: "generic fence",
			in:   "```\n{\"city\":\"上海\"}\n```",
			want: `{"city":"上海"}`,
		},
		{
			name: "json fence wins over generic fence",
			in:   "```\nignore me\n```\n```json\n{\"a\":1}\n```",
			// The ```json scan runs first regardless of position.
			want: `{"a":1}`,
		},
		{
			name: "bare braces",
			in:   "结果是 {\"city\":\"西安\",\"days\":[]} ,请查收。",
			want: `{"city":"西安","days":[]}`,
		},
		{
			name: "bare braces span first to last",
			in:   `{"a":{"b":1}}`,
			want: `{"a":{"b":1}}`,
		},
		{
			name:    "unterminated json fence",
			in:      "```json\n{\"city\":\"北京\"}",
			wantErr: true,
		},
		{
			name:    "unterminated generic fence",
			in:      "```\n{\"city\":\"北京\"}",
			wantErr: true,
		},
		{
			name:    "no payload",
			in:      "抱歉,我无法生成计划。",
			wantErr: true,
		},
		{
			name:    "empty input",
			in:      "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
