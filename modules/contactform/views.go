package contactform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactkit/handler"
	"github.com/dmitrymomot/contactkit/pkg/toast"
)

// Element ids the handlers patch.
const (
	ToastContainerID = "toast-container"
	ModalRootID      = "modal-root"
	ModalID          = "cta-modal"
)

// FieldParams describes one input.
type FieldParams struct {
	Name     string
	Label    string
	Type     string
	Required bool
	MaxLen   int
}

// FormParams contains data for rendering a contact form.
type FormParams struct {
	ElementID    string
	Action       string
	Signal       string
	Title        string
	Description  string
	SubmitLabel  string
	SendingLabel string
	Fields       []FieldParams
}

// ModalParams contains data for rendering a CTA modal.
type ModalParams struct {
	Kind        string
	Title       string
	Description string
	CloseLabel  string
	Form        FormParams
}

// CTALink is a call-to-action button on the page.
type CTALink struct {
	Kind  string
	Label string
}

// PageParams contains data for rendering the landing page.
type PageParams struct {
	Title    string
	Lang     string
	Features Features
	Form     FormParams
	CTAs     []CTALink
	Modal    *ModalParams
}

// Views renders the module markup. Any nil view falls back to the default.
type Views struct {
	Page      func(PageParams) templ.Component
	Form      func(FormParams) templ.Component
	Modal     func(ModalParams) templ.Component
	Toast     func(toast.Toast) templ.Component
	ToastList func([]toast.Toast) templ.Component
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

// DefaultViews returns the built-in markup.
func DefaultViews() *Views {
	return &Views{
		Page:      PageView,
		Form:      FormView,
		Modal:     ModalView,
		Toast:     ToastView,
		ToastList: ToastListView,
		ErrorPage: ErrorPageView,
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.Form == nil {
		out.Form = d.Form
	}
	if out.Modal == nil {
		out.Modal = d.Modal
	}
	if out.Toast == nil {
		out.Toast = d.Toast
	}
	if out.ToastList == nil {
		out.ToastList = d.ToastList
	}
	if out.ErrorPage == nil {
		out.ErrorPage = d.ErrorPage
	}
	return &out
}

var esc = templ.EscapeString[string]

func component(fn func(ctx context.Context, b *strings.Builder) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := fn(ctx, &b); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// formSignals is the initial DataStar state of a form.
func formSignals(p FormParams) string {
	errs := make(map[string]bool, len(p.Fields))
	for _, f := range p.Fields {
		errs[f.Name] = false
	}
	data, _ := json.Marshal(map[string]any{
		p.Signal: map[string]any{"submitting": false, "errors": errs},
	})
	return string(data)
}

// FormView renders a form posting to p.Action. It works without JavaScript;
// with DataStar the submit is sent as form data over SSE.
func FormView(p FormParams) templ.Component {
	return component(func(_ context.Context, b *strings.Builder) error {
		fmt.Fprintf(b, `<form id="%s" class="contact-form" action="%s" method="post" novalidate data-signals="%s" data-on-submit__prevent="@post('%s', {contentType: 'form'})">`,
			esc(p.ElementID), esc(p.Action), esc(formSignals(p)), esc(p.Action))
		if p.Title != "" {
			fmt.Fprintf(b, `<h2>%s</h2>`, esc(p.Title))
		}
		if p.Description != "" {
			fmt.Fprintf(b, `<p class="form-description">%s</p>`, esc(p.Description))
		}
		for _, f := range p.Fields {
			id := p.ElementID + "-" + f.Name
			fmt.Fprintf(b, `<div class="form-group" data-class-field-error="$%s.errors.%s">`, esc(p.Signal), esc(f.Name))
			fmt.Fprintf(b, `<label for="%s">%s`, esc(id), esc(f.Label))
			if f.Required {
				b.WriteString(` <span aria-hidden="true">*</span>`)
			}
			b.WriteString(`</label>`)

			attrs := fmt.Sprintf(`id="%s" name="%s"`, esc(id), esc(f.Name))
			if f.MaxLen > 0 {
				attrs += fmt.Sprintf(` maxlength="%d"`, f.MaxLen)
			}
			if f.Required {
				attrs += ` required`
			}
			if f.Type == "textarea" {
				fmt.Fprintf(b, `<textarea %s rows="5"></textarea>`, attrs)
			} else {
				fmt.Fprintf(b, `<input type="%s" %s>`, esc(f.Type), attrs)
			}
			b.WriteString(`</div>`)
		}
		fmt.Fprintf(b, `<button type="submit" class="btn btn-primary" data-attr-disabled="$%[1]s.submitting" data-text="$%[1]s.submitting ? '%[2]s' : '%[3]s'">%[4]s</button>`,
			esc(p.Signal), esc(jsString(p.SendingLabel)), esc(jsString(p.SubmitLabel)), esc(p.SubmitLabel))
		b.WriteString(`</form>`)
		return nil
	})
}

// jsString escapes s for a single quoted JavaScript string.
func jsString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s)
}

// ModalView renders the CTA dialog around its form.
func ModalView(p ModalParams) templ.Component {
	return component(func(ctx context.Context, b *strings.Builder) error {
		fmt.Fprintf(b, `<div id="%s" class="modal" role="dialog" aria-modal="true" aria-labelledby="%s-title" data-cta="%s">`,
			ModalID, ModalID, esc(p.Kind))
		b.WriteString(`<div class="modal-content">`)
		fmt.Fprintf(b, `<button type="button" class="modal-close" aria-label="%s" data-on-click="document.getElementById('%s').remove()">&times;</button>`,
			esc(p.CloseLabel), ModalID)
		fmt.Fprintf(b, `<h2 id="%s-title">%s</h2>`, ModalID, esc(p.Title))
		if p.Description != "" {
			fmt.Fprintf(b, `<p>%s</p>`, esc(p.Description))
		}
		if err := FormView(p.Form).Render(ctx, b); err != nil {
			return err
		}
		b.WriteString(`</div></div>`)
		return nil
	})
}

func toastElementID(t toast.Toast) string {
	return "toast-" + t.ID
}

// ToastView renders one toast. Fading toasts carry the toast-fading class.
func ToastView(t toast.Toast) templ.Component {
	return component(func(_ context.Context, b *strings.Builder) error {
		class := "toast toast-" + string(t.Level)
		if t.Fading {
			class += " toast-fading"
		}
		role := "status"
		if t.Level == toast.LevelError {
			role = "alert"
		}
		fmt.Fprintf(b, `<div id="%s" class="%s" role="%s" style="background:%s">%s</div>`,
			esc(toastElementID(t)), esc(class), role, t.Level.Color(), esc(t.Message))
		return nil
	})
}

// ToastListView renders the toasts in order, for filling the container.
func ToastListView(ts []toast.Toast) templ.Component {
	return component(func(ctx context.Context, b *strings.Builder) error {
		for _, t := range ts {
			if err := ToastView(t).Render(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

const styles = `body{font-family:system-ui,sans-serif;margin:0;color:#111827}
main{max-width:40rem;margin:0 auto;padding:2rem 1rem}
.form-group{display:flex;flex-direction:column;margin-bottom:1rem}
.form-group input,.form-group textarea{padding:.5rem;border:1px solid #d1d5db;border-radius:.375rem}
.field-error input,.field-error textarea{border-color:#ef4444}
.btn{padding:.625rem 1.25rem;border:0;border-radius:.375rem;cursor:pointer}
.btn-primary{background:#2563eb;color:#fff}.btn[disabled]{opacity:.6;cursor:wait}
.ctas{display:flex;gap:.75rem;margin:2rem 0}
.toast-container{position:fixed;top:1rem;right:1rem;display:flex;flex-direction:column;gap:.5rem;z-index:50}
.toast{color:#fff;padding:.75rem 1rem;border-radius:.5rem;box-shadow:0 4px 12px rgba(0,0,0,.15);transition:opacity .3s}
.toast-fading{opacity:0}
.modal{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center;z-index:40}
.modal-content{background:#fff;border-radius:.5rem;padding:1.5rem;max-width:32rem;width:100%;position:relative}
.modal-close{position:absolute;top:.5rem;right:.75rem;border:0;background:none;font-size:1.5rem;cursor:pointer}
.floating-cta{position:fixed;bottom:1.5rem;right:1.5rem;z-index:30}
.particles{position:fixed;inset:0;pointer-events:none;z-index:-1}
.loader{position:fixed;inset:0;background:#fff;z-index:60;transition:opacity .3s}.loader-hidden{opacity:0;pointer-events:none}`

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

func ctaAttrs(kind string) string {
	return fmt.Sprintf(`href="/cta/%[1]s" data-on-click__prevent="@get('/cta/%[1]s')"`, esc(kind))
}

// PageView renders the landing page with the contact form, the CTA
// buttons, the modal root and the toast container.
func PageView(p PageParams) templ.Component {
	return component(func(ctx context.Context, b *strings.Builder) error {
		lang := p.Lang
		if lang == "" {
			lang = "en"
		}
		fmt.Fprintf(b, `<!doctype html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`, esc(lang))
		fmt.Fprintf(b, `<title>%s</title><style>%s</style>`, esc(p.Title), styles)
		fmt.Fprintf(b, `<script type="module" src="%s"></script></head><body>`, datastarScript)

		if p.Features.Loader {
			b.WriteString(`<div id="page-loader" class="loader" aria-hidden="true" data-on-load__delay.300ms="el.classList.add('loader-hidden')"></div>`)
		}
		if p.Features.Particles {
			b.WriteString(`<div id="particles" class="particles" aria-hidden="true"></div>`)
		}

		b.WriteString(`<main>`)
		if len(p.CTAs) > 0 {
			b.WriteString(`<nav class="ctas">`)
			for _, c := range p.CTAs {
				fmt.Fprintf(b, `<a class="btn btn-primary" data-cta="%s" %s>%s</a>`, esc(c.Kind), ctaAttrs(c.Kind), esc(c.Label))
			}
			b.WriteString(`</nav>`)
		}
		b.WriteString(`<section id="contact">`)
		if err := FormView(p.Form).Render(ctx, b); err != nil {
			return err
		}
		b.WriteString(`</section></main>`)

		if p.Features.FloatingCTA && len(p.CTAs) > 0 {
			c := p.CTAs[0]
			fmt.Fprintf(b, `<a id="floating-cta" class="btn btn-primary floating-cta" %s>%s</a>`, ctaAttrs(c.Kind), esc(c.Label))
		}

		fmt.Fprintf(b, `<div id="%s">`, ModalRootID)
		if p.Modal != nil {
			if err := ModalView(*p.Modal).Render(ctx, b); err != nil {
				return err
			}
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(b, `<div id="%s" class="toast-container" aria-live="polite" data-on-load="@get('/toasts')"></div>`, ToastContainerID)
		b.WriteString(`</body></html>`)
		return nil
	})
}

// ErrorPageView renders a minimal error page.
func ErrorPageView(p handler.ErrorPageParams) templ.Component {
	return component(func(_ context.Context, b *strings.Builder) error {
		fmt.Fprintf(b, `<!doctype html><html><head><meta charset="utf-8"><title>%d</title><style>%s</style></head><body><main>`, p.StatusCode, styles)
		fmt.Fprintf(b, `<h1>%d</h1><p>%s</p>`, p.StatusCode, esc(p.Message))
		if p.RequestID != "" {
			fmt.Fprintf(b, `<p><small>Request ID: %s</small></p>`, esc(p.RequestID))
		}
		b.WriteString(`<p><a href="/#contact">Back</a></p></main></body></html>`)
		return nil
	})
}
