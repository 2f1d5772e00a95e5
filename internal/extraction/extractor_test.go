package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDetection(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", "greenhouse"},
		{"https://jobs.lever.co/acme/abc-def", "lever"},
		{"https://acme.wd1.myworkdayjobs.com/en-US/careers/job/123", "workday"},
		{"https://acme.workday.com/careers/123", "workday"},
		{"https://careers.example.com/jobs/123", "generic"},
		{"not a url at all", "generic"},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.For(tt.url).Name())
		})
	}
}

const greenhousePage = `<html><body>
<nav>Navigation</nav>
<h1 class="app-title">Senior Backend Engineer</h1>
<div class="company-name">Acme Corp</div>
<div class="location">Remote, US</div>
<div class="job__description body">
<p>We build distributed systems in Go.</p>
<p>Requirements: Go, PostgreSQL, Kubernetes.</p>
</div>
<div class="application--wrapper"><form>Apply here</form></div>
</body></html>`

func TestGreenhouseExtract(t *testing.T) {
	r := NewRegistry()
	posting, err := r.Extract(greenhousePage, "https://boards.greenhouse.io/acme/jobs/123")
	require.NoError(t, err)

	assert.Equal(t, "greenhouse", posting.Source)
	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Equal(t, "Remote, US", posting.Location)
	assert.Contains(t, posting.Description, "distributed systems in Go")
	assert.Contains(t, posting.Description, "PostgreSQL")
	assert.NotContains(t, posting.Description, "Apply here")
	assert.NotContains(t, posting.Description, "Navigation")
}

const genericPage = `<html><body>
<header>Acme careers</header>
<main>
<h1>Data Engineer</h1>
<p>Python and Airflow experience required.</p>
</main>
<footer>legal footer</footer>
</body></html>`

func TestGenericExtract(t *testing.T) {
	r := NewRegistry()
	posting, err := r.Extract(genericPage, "https://careers.example.com/jobs/9")
	require.NoError(t, err)

	assert.Equal(t, "generic", posting.Source)
	assert.Contains(t, posting.Description, "Airflow experience")
	assert.NotContains(t, posting.Description, "legal footer")
}

func TestExtractEmptyPage(t *testing.T) {
	r := NewRegistry()
	_, err := r.Extract("<html><body></body></html>", "https://careers.example.com/jobs/9")
	require.Error(t, err)

	var extractionErr *Error
	assert.ErrorAs(t, err, &extractionErr)
}

func TestNeedsRendering(t *testing.T) {
	assert.True(t, needsRendering(""))
	assert.True(t, needsRendering("short description"))

	long := make([]byte, minStaticLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, needsRendering(string(long)))
}
