package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome to {{.AppName}}</h2>
    <p>Your account <strong>{{.Email}}</strong> has been created.</p>
    <p>Log in and start uploading photos to your gallery.</p>
  </body>
</html>`))

// Render renders a named template. Returns subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err := welcomeTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		app, _ := data["AppName"].(string)
		if app == "" {
			app = "Cloud Gallery"
		}
		subject = "Welcome to " + app
		text = "Your account has been created. Log in and start uploading photos."
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
