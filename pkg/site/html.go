package site

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// attrs keeps attributes in the order they are written. Values go through
// templ.RenderAttributes, which escapes them; false booleans are dropped.
type attrs = templ.OrderedAttributes

func kv(key string, value any) templ.KeyValue[string, any] {
	return templ.KeyValue[string, any]{Key: key, Value: value}
}

// el renders <tag attrs>children</tag>.
func el(tag string, a attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, tag, a); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// void renders an element without content, such as img or link.
func void(tag string, a attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return openTag(ctx, w, tag, a)
	})
}

func openTag(ctx context.Context, w io.Writer, tag string, a attrs) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, a); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

// text renders escaped character data.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func group(children ...templ.Component) templ.Component { return templ.Join(children...) }

// safeURL drops URLs with schemes other than http(s), mailto, tel and ftp.
func safeURL(s string) string { return string(templ.URL(s)) }

// trackCall is the inline beacon call for an onclick attribute.
func trackCall(name string, data map[string]string) string {
	return templ.SafeScriptInline("track", name, data)
}
