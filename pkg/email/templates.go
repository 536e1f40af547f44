package email

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Render renders a templ component into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Preview renders template parameters as a simple HTML table, which is what
// DevSender stores next to the raw message.
func Preview(msg TemplateMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		keys := make([]string, 0, len(msg.Params))
		for k := range msg.Params {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		var b strings.Builder
		b.WriteString("<!doctype html><html><body><h1>")
		b.WriteString(templ.EscapeString(msg.Params["subject"]))
		b.WriteString("</h1><p>To: ")
		b.WriteString(templ.EscapeString(msg.To))
		b.WriteString(" &middot; Template: ")
		b.WriteString(templ.EscapeString(msg.TemplateID))
		b.WriteString("</p><table>")
		for _, k := range keys {
			b.WriteString("<tr><th>")
			b.WriteString(templ.EscapeString(k))
			b.WriteString("</th><td style=\"white-space:pre-wrap\">")
			b.WriteString(templ.EscapeString(msg.Params[k]))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table></body></html>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
