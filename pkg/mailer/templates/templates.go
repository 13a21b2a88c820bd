package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Template names understood by the email worker.
const (
	Welcome = "welcome"
)

var welcomeHTML = htmltpl.Must(htmltpl.New("welcome_html").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome to CatWiki, {{.Name}}!</h2>
    <p>Your account for <strong>{{.Email}}</strong> is ready.</p>
    <p>Log in any time to browse breeds, search the catalogue and save your favourites.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this account, you can ignore this email.</p>
  </body>
</html>`))

var welcomeText = texttpl.Must(texttpl.New("welcome_text").Parse(`Welcome to CatWiki, {{.Name}}!

Your account for {{.Email}} is ready. Log in any time to browse breeds,
search the catalogue and save your favourites.

If you did not create this account, you can ignore this email.`))

// Render renders a named template, returning subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var tb, hb bytes.Buffer
		if err = welcomeText.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = welcomeHTML.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return "Welcome to CatWiki", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
