package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// pageTemplate renders the browser-facing landing pages reached from emailed
// links.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}} - Plus Health</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</body>
</html>
`))

type pageData struct {
	Title   string
	Message string
}

func renderPage(c *gin.Context, status int, title, message string) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Title: title, Message: message}); err != nil {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("internal server error"))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
