package handlers

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

// applicationsPage renders the operator review table. The route is public:
// the original portal shipped it without access control and that behavior is
// preserved rather than silently changed (see DESIGN.md).
var applicationsPage = template.Must(template.New("applications").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Applications - JobSetu</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 20px; border-radius: 8px; }
        h1 { color: #e63946; text-align: center; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background-color: #1d3557; color: white; }
        tr:hover { background-color: #f9f9f9; }
        .no-data { text-align: center; padding: 40px; color: #666; }
        .back-btn { display: inline-block; padding: 10px 20px; background: #e63946; color: white; text-decoration: none; border-radius: 5px; margin-bottom: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <a href="/" class="back-btn">&larr; Back to Portal</a>
        <h1>Job Applications</h1>
{{if .}}        <table>
            <thead>
                <tr>
                    <th>ID</th>
                    <th>Name</th>
                    <th>Mobile</th>
                    <th>Location</th>
                    <th>Message</th>
                    <th>Submitted</th>
                </tr>
            </thead>
            <tbody>
{{range .}}                <tr>
                    <td>{{.ID}}</td>
                    <td>{{.Name}}</td>
                    <td>{{.Mobile}}</td>
                    <td>{{.Location}}</td>
                    <td>{{if .CoverLetter}}{{.CoverLetter}}{{else}}N/A{{end}}</td>
                    <td>{{.AppliedDate.Format "2006-01-02 15:04"}}</td>
                </tr>
{{end}}            </tbody>
        </table>
{{else}}        <div class="no-data"><h3>No applications submitted yet</h3></div>
{{end}}    </div>
</body>
</html>
`))

// ViewApplications lists every application as an HTML table, newest first.
func (h *ApplicationHandler) ViewApplications(c *fiber.Ctx) error {
	applications, err := h.applications.ListAllApplications()
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := applicationsPage.Execute(&buf, applications); err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
