package email

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmailMessage(t *testing.T) {
	service := NewEmailService("smtp.example.com", "587", "user", "pass", "fleet@example.com", "Fleet Admin")

	message := string(service.buildEmailMessage("manager@example.com", "Test Subject", "<p>body</p>"))

	assert.Contains(t, message, "From: Fleet Admin <fleet@example.com>\r\n")
	assert.Contains(t, message, "To: manager@example.com\r\n")
	assert.Contains(t, message, "Subject: Test Subject\r\n")
	assert.Contains(t, message, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, message, "\r\n<p>body</p>")
}

func TestDigestTemplateRenders(t *testing.T) {
	tmpl, err := template.ParseFS(templateFS, "templates/alert_digest.html")
	require.NoError(t, err)

	data := digestData{
		Date:      "June 1, 2024",
		HighCount: 1,
		Alerts: []DigestAlert{
			{Title: "Insurance expiring", Message: "Policy for ABC-123 expires in 3 days", Priority: "high", DueDate: "2024-06-04"},
			{Title: "Oil change due", Message: "KLM-456 oil change due in 6 days", Priority: "medium", DueDate: "2024-06-07"},
		},
	}

	var body bytes.Buffer
	require.NoError(t, tmpl.Execute(&body, data))

	html := body.String()
	assert.Contains(t, html, "June 1, 2024")
	assert.Contains(t, html, "Insurance expiring")
	assert.Contains(t, html, "Oil change due")
	assert.Contains(t, html, "2024-06-04")
}

func TestDigestTemplateEscapesContent(t *testing.T) {
	tmpl, err := template.ParseFS(templateFS, "templates/alert_digest.html")
	require.NoError(t, err)

	data := digestData{
		Date: "June 1, 2024",
		Alerts: []DigestAlert{
			{Title: "<script>alert(1)</script>", Message: "msg", Priority: "medium", DueDate: "2024-06-07"},
		},
	}

	var body bytes.Buffer
	require.NoError(t, tmpl.Execute(&body, data))

	assert.NotContains(t, body.String(), "<script>")
}
