package wordpress

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "one\r\ntwo", "one\ntwo"},
		{"blank runs collapse", "one\n\n\ntwo\n\nthree", "one\ntwo\nthree"},
		{"entities", "Tom &amp; Jerry &ndash; part&nbsp;2", "Tom & Jerry – part 2"},
		{"combined", "a&amp;b\r\n\r\nc", "a&b\nc"},
		{"plain", "untouched text", "untouched text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormaliseContent(tt.in))
		})
	}
}

func TestPostMetadata(t *testing.T) {
	at := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	post := Post{ID: 9, Time: at, Title: "Summer notes", Content: "text"}

	metadata := post.Metadata()

	assert.Equal(t, "2024-07-15", metadata["date"])
	assert.Equal(t, at.Unix(), metadata["timestamp"])
	assert.Equal(t, "Summer notes", metadata["title"])
	assert.NoError(t, metadata.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WP_USER", "wp")
	t.Setenv("WP_DATABASE", "blog")
	t.Setenv("WP_HOST", "db.local")

	cfg, err := ConfigFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "wp", cfg.User)
	assert.Equal(t, "blog", cfg.Database)
	assert.Equal(t, "db.local", cfg.Host)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	// t.Setenv registers restoration; the unset makes the variables
	// genuinely absent so the defaults apply.
	t.Setenv("WP_DATABASE", "x")
	t.Setenv("WP_HOST", "x")
	os.Unsetenv("WP_DATABASE")
	os.Unsetenv("WP_HOST")

	cfg, err := ConfigFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "wordpress", cfg.Database)
	assert.Equal(t, "localhost", cfg.Host)
}
