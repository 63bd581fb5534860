package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/convcalc"
)

func csrfField(m *markup, token string) {
	m.hidden("_csrf", token)
}

// deleteButton posts a DELETE override to action.
func deleteButton(m *markup, action, csrf string) {
	m.raw(`<form method="post"`)
	m.attr("action", action)
	m.raw(">")
	m.hidden("_method", "DELETE")
	csrfField(m, csrf)
	m.raw(`<button type="submit">Delete</button></form>`)
}

// AdminLoginPage is the password form.
func AdminLoginPage(showError bool, csrf string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section class="admin">`, "\n<h1>Admin</h1>\n")
		if showError {
			m.raw(`<p class="error">Wrong password.</p>`, "\n")
		}
		m.raw(`<form method="post" action="/admin/login/">`)
		csrfField(m, csrf)
		m.raw(`<label>Password <input type="password" name="password" autocomplete="current-password" required></label>`)
		m.raw(`<button type="submit">Log in</button></form>`, "\n</section>\n")
	})
}

// AdminDashboardPage lists every post, drafts included.
func AdminDashboardPage(posts []convcalc.BlogPost, msg, csrf string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section class="admin">`, "\n<h1>Dashboard</h1>\n")
		if msg != "" {
			m.raw(`<p class="flash">`)
			m.text(msg)
			m.raw("</p>\n")
		}
		m.raw(`<p><a class="button" href="/admin/post/new/">New post</a> <a href="/admin/images/">Images</a> <a href="/admin/usage/">Usage stats</a></p>`, "\n")
		m.raw("<table>\n<thead><tr><th>Title</th><th>Date</th><th>Status</th><th></th></tr></thead>\n<tbody>\n")
		if len(posts) == 0 {
			m.raw(`<tr><td colspan="4">No posts yet.</td></tr>`, "\n")
		}
		for _, p := range posts {
			m.raw("<tr><td><a")
			m.attr("href", "/admin/post/"+PathEscape(p.ID)+"/")
			m.raw(">")
			m.text(p.Title)
			m.raw("</a>")
			if p.Featured {
				m.raw(" &#9733;")
			}
			m.raw("</td><td>")
			m.text(p.Date)
			m.raw("</td><td>")
			if p.Published {
				m.raw("<a")
				m.url("href", p.Link)
				m.raw(">published</a>")
			} else {
				m.raw("draft")
			}
			m.raw("</td><td>")
			deleteButton(m, "/admin/post/"+PathEscape(p.ID)+"/", csrf)
			m.raw("</td></tr>\n")
		}
		m.raw("</tbody>\n</table>\n")
		m.raw(`<form method="post" action="/admin/logout/">`)
		csrfField(m, csrf)
		m.raw(`<button type="submit">Log out</button></form>`, "\n</section>\n")
	})
}

// AdminFormPage edits a post; a zero ID means a new post.
func AdminFormPage(p convcalc.BlogPost, csrf string) templ.Component {
	return component(func(m *markup) {
		input := func(label, name, kind, value, placeholder string) {
			m.raw("<p><label>")
			m.text(label)
			m.raw("<br><input")
			m.attr("type", kind)
			m.attr("name", name)
			m.attr("value", value)
			if placeholder != "" {
				m.attr("placeholder", placeholder)
			}
			m.flag("required", name == "title")
			m.raw("></label></p>\n")
		}
		textarea := func(label, name, rows, value string) {
			m.raw("<p><label>")
			m.text(label)
			m.raw("<br><textarea")
			m.attr("name", name)
			m.attr("rows", rows)
			m.raw(">")
			m.text(value)
			m.raw("</textarea></label></p>\n")
		}
		checkbox := func(label, name string, on bool) {
			m.raw(`<label><input type="checkbox"`)
			m.attr("name", name)
			m.raw(` value="1"`)
			m.flag("checked", on)
			m.raw("> ")
			m.text(label)
			m.raw("</label>\n")
		}

		m.raw(`<section class="admin">`, "\n<h1>")
		if p.ID != "" {
			m.raw("Edit post")
		} else {
			m.raw("New post")
		}
		m.raw("</h1>\n", `<form method="post" action="/admin/save/">`, "\n")
		csrfField(m, csrf)
		m.hidden("id", p.ID)
		input("Title", "title", "text", p.Title, "")
		input("Slug", "slug", "text", p.Slug, "generated from title")
		input("Author", "author", "text", p.Author, "")
		input("Date", "date", "date", p.Date, "")
		input("Tags", "tags", "text", JoinTags(p.Tags), "baking, metric")
		input("Cover image URL", "cover_image", "text", p.CoverImage, "/public/uploads/cover.jpg")
		textarea("Summary", "summary", "3", p.Summary)
		textarea("Content (HTML)", "content", "18", p.Content)
		m.raw("<p>\n")
		checkbox("Published", "published", p.Published)
		checkbox("Featured", "featured", p.Featured)
		m.raw("</p>\n", `<button type="submit">Save</button> <a href="/admin/">Cancel</a>`, "\n</form>\n</section>\n")
	})
}

// AdminImagesPage uploads and lists cover images.
func AdminImagesPage(images []convcalc.Image, csrf string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section class="admin">`, "\n<h1>Images</h1>\n")
		m.raw(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		csrfField(m, csrf)
		m.raw(`<input type="file" name="image" accept="image/jpeg,image/png,image/gif" required> <button type="submit">Upload</button></form>`, "\n")
		m.raw("<table>\n<thead><tr><th>File</th><th>Size</th><th>Uploaded</th><th></th></tr></thead>\n<tbody>\n")
		if len(images) == 0 {
			m.raw(`<tr><td colspan="4">No images uploaded.</td></tr>`, "\n")
		}
		for _, img := range images {
			m.raw("<tr><td><a")
			m.attr("href", "/public/uploads/"+PathEscape(img.Filename))
			m.raw(">")
			m.text(img.Filename)
			m.raw("</a><br><small>")
			m.text(img.OriginalName)
			m.raw("</small></td><td>")
			m.text(strconv.Itoa(img.Width))
			m.raw("&times;")
			m.text(strconv.Itoa(img.Height), ", ", strconv.Itoa(img.Size), " bytes")
			m.raw("</td><td>")
			m.text(img.UploadedAt)
			m.raw("</td><td>")
			deleteButton(m, "/admin/images/"+PathEscape(img.Filename)+"/", csrf)
			m.raw("</td></tr>\n")
		}
		m.raw("</tbody>\n</table>\n", `<p><a href="/admin/">Back to dashboard</a></p>`, "\n</section>\n")
	})
}

// NotFoundPage is the 404 body.
func NotFoundPage() templ.Component {
	return component(func(m *markup) {
		m.raw("<h1>Page not found</h1>\n")
		m.raw(`<p>The page you are looking for does not exist. Try <a href="/search/">searching for a converter</a> or go back <a href="/">home</a>.</p>`, "\n")
	})
}

// ServerErrorPage is the 500 body.
func ServerErrorPage() templ.Component {
	return component(func(m *markup) {
		m.raw("<h1>Something went wrong</h1>\n<p>Please try again in a moment.</p>\n")
	})
}
