// Package site holds the landing page content and renders its two variants.
//
// Content is an embedded YAML catalogue shared by the desktop and mobile
// pages. Each variant carries only what differs between them: whether the
// banner carousel runs, which images are preloaded, the section list and
// the header scroll thresholds.
//
//	cat, err := site.Load()
//	v, err := cat.Variant(device.Mobile)
//	err = site.Page(cat, v, site.PageData{}).Render(ctx, w)
package site
