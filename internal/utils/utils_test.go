package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
)

func validData() domain.ProjectCreationData {
	return domain.ProjectCreationData{
		Title:       "Portfolio Site",
		Description: "Personal portfolio",
		Tools:       domain.Tools{"React", "Next.js"},
		LiveLink:    "https://example.com",
		ProjectLink: "https://github.com/example/portfolio",
		ImageUrl:    "https://images.example.com/shot.png",
	}
}

func TestProjectValidatorCreationData(t *testing.T) {
	v := &ProjectValidator{}

	t.Run("valid data passes", func(t *testing.T) {
		data := validData()
		assert.NoError(t, v.CreationData(&data))
	})

	testCases := []struct {
		name   string
		mutate func(*domain.ProjectCreationData)
	}{
		{name: "empty title", mutate: func(d *domain.ProjectCreationData) { d.Title = "" }},
		{name: "whitespace title", mutate: func(d *domain.ProjectCreationData) { d.Title = "   " }},
		{name: "too long title", mutate: func(d *domain.ProjectCreationData) { d.Title = strings.Repeat("x", 256) }},
		{name: "empty description", mutate: func(d *domain.ProjectCreationData) { d.Description = "" }},
		{name: "empty live link", mutate: func(d *domain.ProjectCreationData) { d.LiveLink = "" }},
		{name: "empty project link", mutate: func(d *domain.ProjectCreationData) { d.ProjectLink = "" }},
		{name: "empty image url", mutate: func(d *domain.ProjectCreationData) { d.ImageUrl = "" }},
		{name: "no tools", mutate: func(d *domain.ProjectCreationData) { d.Tools = nil }},
		{name: "only blank tools", mutate: func(d *domain.ProjectCreationData) { d.Tools = domain.Tools{" ", "\t"} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := validData()
			tc.mutate(&data)
			assert.Error(t, v.CreationData(&data))
		})
	}

	t.Run("trims fields and tool entries", func(t *testing.T) {
		data := validData()
		data.Title = "  Portfolio Site  "
		data.Tools = domain.Tools{" React ", "", "Next.js"}

		require.NoError(t, v.CreationData(&data))
		assert.Equal(t, "Portfolio Site", data.Title)
		assert.Equal(t, domain.Tools{"React", "Next.js"}, data.Tools)
	})

	t.Run("keeps order and duplicates", func(t *testing.T) {
		data := validData()
		data.Tools = domain.Tools{"Go", "React", "Go"}

		require.NoError(t, v.CreationData(&data))
		assert.Equal(t, domain.Tools{"Go", "React", "Go"}, data.Tools)
	})
}

func TestStaticVerifier(t *testing.T) {
	v := &StaticVerifier{Email: "admin@example.com", Password: "hunter2"}

	assert.True(t, v.Verify("admin@example.com", "hunter2"))
	assert.False(t, v.Verify("admin@example.com", "wrong"))
	assert.False(t, v.Verify("other@example.com", "hunter2"))
	assert.False(t, v.Verify("", ""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	v := &BcryptVerifier{Email: "admin@example.com", PasswordHash: string(hash)}

	assert.True(t, v.Verify("admin@example.com", "hunter2"))
	assert.False(t, v.Verify("admin@example.com", "wrong"))
	assert.False(t, v.Verify("other@example.com", "hunter2"))
}

func TestStrictSanitizer(t *testing.T) {
	s := NewStrictSanitizer()

	assert.Equal(t, "hello", s.Sanitize("<script>alert(1)</script>hello"))
	assert.Equal(t, "plain text", s.Sanitize("plain text"))
	assert.Equal(t, "bold", s.Sanitize("<b>bold</b>"))
}
