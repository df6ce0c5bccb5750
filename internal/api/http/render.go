package httpapi

import (
	"html/template"

	"xoi-ngoc-web/internal/domain"
	"xoi-ngoc-web/internal/format"
)

type pageData struct {
	View    domain.MenuView
	Name    string
	Tagline string
	// tel: is outside html/template's allowed URL schemes, so the link is
	// pre-vetted here; it is built from digits only.
	TelURL    template.URL
	ZaloURL   string
	MapsURL   string
	Facebook  string
	UpdatedAt string
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"vnd": format.FormatVND,
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}} - {{.Tagline}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #fffbf5; color: #1f2937; }
header { position: sticky; top: 0; background: #fff; border-bottom: 1px solid #fde9c8; padding: 10px 16px; display: flex; justify-content: space-between; align-items: center; }
header h1 { font-size: 18px; margin: 0; }
header p { font-size: 12px; color: #d97706; margin: 0; }
.actions a { display: inline-block; margin-left: 8px; padding: 8px 12px; border-radius: 10px; color: #fff; text-decoration: none; font-size: 13px; }
.actions .call { background: #f59e0b; }
.actions .zalo { background: #3b82f6; }
.actions .fb { background: #2563eb; }
.info-bar { background: #fef3c7; padding: 8px 16px; font-size: 13px; display: flex; gap: 16px; flex-wrap: wrap; }
.info-bar a { color: #92400e; text-decoration: none; }
main { max-width: 640px; margin: 0 auto; padding: 16px; }
.search input { width: 100%; box-sizing: border-box; padding: 10px 14px; border: 1px solid #e5e7eb; border-radius: 12px; font-size: 14px; }
.tabs { display: flex; gap: 8px; overflow-x: auto; padding: 12px 0; }
.tabs a { padding: 8px 14px; border-radius: 12px; font-size: 13px; white-space: nowrap; text-decoration: none; background: #fff; color: #4b5563; border: 1px solid #e5e7eb; }
.tabs a.active { background: #f59e0b; color: #fff; border-color: #f59e0b; }
.note { margin: 12px 0; padding: 10px 12px; background: #fffbeb; border: 1px solid #fde68a; border-radius: 12px; font-size: 13px; color: #92400e; }
.item { background: #fff; border: 1px solid #f3f4f6; border-radius: 12px; padding: 12px 16px; margin-bottom: 8px; display: flex; justify-content: space-between; align-items: center; gap: 12px; }
.item h3 { font-size: 14px; margin: 0; }
.item p { font-size: 12px; color: #6b7280; margin: 2px 0 0; }
.item .price { font-weight: 700; color: #d97706; white-space: nowrap; }
.empty { text-align: center; padding: 48px 0; color: #6b7280; }
.empty a { color: #d97706; }
.toppings { margin-top: 24px; padding-top: 16px; border-top: 1px solid #f3f4f6; }
.toppings h2 { font-size: 14px; }
.chip { display: inline-block; margin: 0 6px 6px 0; padding: 6px 10px; background: #fffbeb; border: 1px solid #fde68a; border-radius: 8px; font-size: 13px; }
.chip b { color: #d97706; }
.unavailable { text-align: center; padding: 48px 16px; }
.unavailable a { display: inline-block; margin-top: 12px; padding: 10px 18px; background: #f59e0b; color: #fff; border-radius: 12px; text-decoration: none; }
footer { text-align: center; font-size: 12px; color: #9ca3af; padding: 24px 0; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Name}}</h1>
    <p>{{.Tagline}}</p>
  </div>
  <div class="actions">
    <a class="call" href="{{.TelURL}}" title="Gọi đặt món">Gọi ngay</a>
    <a class="zalo" href="{{.ZaloURL}}" target="_blank" rel="noopener noreferrer" title="Chat Zalo">Zalo</a>
    <a class="fb" href="{{.Facebook}}" target="_blank" rel="noopener noreferrer" title="Facebook">Facebook</a>
  </div>
</header>
<div class="info-bar">
  <a href="{{.MapsURL}}" target="_blank" rel="noopener noreferrer">📍 {{.View.Meta.Address}}</a>
  <span>🕖 {{.View.Meta.TimeOpen}} - {{.View.Meta.TimeClose}}</span>
</div>
<main id="menu">
{{if .View.Available}}
  <form class="search" action="/" method="get">
    {{if .View.ActiveCategory}}<input type="hidden" name="category" value="{{.View.ActiveCategory}}">{{end}}
    <input type="text" name="q" value="{{.View.SearchQuery}}" placeholder="Tìm món...">
  </form>
  {{if eq .View.SearchQuery ""}}
  <nav class="tabs">
    {{range .View.Categories}}
    <a href="/?category={{.}}"{{if eq . $.View.ActiveCategory}} class="active"{{end}}>{{.}}</a>
    {{end}}
  </nav>
  {{end}}
  {{if .View.Note}}
  <div class="note">💡 {{.View.Note}}</div>
  {{end}}
  {{if .View.Items}}
    {{range .View.Items}}
    <div class="item">
      <div>
        <h3>{{.Name}}</h3>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
      </div>
      <span class="price">{{vnd .Price}}</span>
    </div>
    {{end}}
  {{else}}
    <div class="empty">
      <p>Không tìm thấy món &quot;{{.View.SearchQuery}}&quot;</p>
      <a href="/?category={{.View.ActiveCategory}}">Xóa tìm kiếm</a>
    </div>
  {{end}}
  {{if and .View.Toppings (eq .View.SearchQuery "")}}
  <div class="toppings">
    <h2>🧀 Thêm topping:</h2>
    {{range .View.Toppings}}
    <span class="chip">{{.Name}} <b>+{{vnd .Price}}</b></span>
    {{end}}
  </div>
  {{end}}
{{else}}
  <div class="unavailable">
    <p>Thực đơn tạm thời không tải được. Quý khách vui lòng gọi điện để đặt món.</p>
    <a href="{{.TelURL}}">📞 {{.View.Meta.Hotline}}</a>
  </div>
{{end}}
</main>
<footer>
  {{if .UpdatedAt}}Cập nhật: {{.UpdatedAt}} · {{end}}{{.Name}}
</footer>
</body>
</html>
`
