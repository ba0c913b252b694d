package prerender

const layoutTemplate = `{{define "header"}}<header class="pr-header">
<a class="pr-brand" href="/">Kalkulator Paliwa</a>
<nav aria-label="Popularne trasy"><ul>
{{- range .Nav}}
<li><a href="{{.Href}}">{{.Route.From}} – {{.Route.To}} ({{km .Route.Distance}})</a></li>
{{- end}}
</ul></nav>
</header>{{end}}
{{define "footer"}}<footer class="pr-footer">
<p>© 2026 Kalkulator Paliwa · <a href="/#faq">FAQ</a> · <a href="/kontakt">Kontakt</a> · <a href="/polityka-prywatnosci">Polityka prywatności</a> · <a href="/regulamin">Regulamin</a></p>
<p>Dane tras: © OpenStreetMap contributors. Wyniki mają charakter szacunkowy.</p>
</footer>{{end}}`

const homeTemplate = `{{template "header" .}}
<main class="pr-main">
<section>
<h1>Kalkulator Kosztów Przejazdu</h1>
<p>Oblicz koszt paliwa na dowolnej trasie w Polsce. Podaj skąd i dokąd jedziesz, spalanie auta i cenę paliwa, a kalkulator wyliczy koszt podróży, także w obie strony i w przeliczeniu na osobę.</p>
<p>Orientacyjne ceny paliw ({{.Prices.LastUpdated}}): Pb95 {{money .Prices.PB95}}, Pb98 {{money .Prices.PB98}}, Diesel {{money .Prices.Diesel}}, LPG {{money .Prices.LPG}} za litr; ładowanie {{money .Prices.Electric}} za kWh.</p>
</section>
<section id="popularne-trasy">
<h2>Popularne trasy</h2>
<ul>
{{- range .Popular}}
<li><a href="{{.Href}}">{{.Route.From}} → {{.Route.To}}</a>: {{km .Route.Distance}}, {{approx .Estimate.Total}}</li>
{{- end}}
</ul>
</section>
<section id="poradnik">{{.Guide}}</section>
<section id="o-kalkulatorze">{{.About}}</section>
<section id="faq">
<h2>Najczęściej zadawane pytania</h2>
{{- range .FAQ}}
<h3>{{.Question}}</h3>
<p>{{.Answer}}</p>
{{- end}}
</section>
</main>
{{template "footer" .}}`

const routeTemplate = `{{template "header" .}}
<main class="pr-main">
<p><a href="/">← Powrót do kalkulatora</a></p>
<h1>{{.Route.From}} → {{.Route.To}}</h1>
<p class="pr-hero">{{.Hero}}</p>
{{- if .Comparison}}
<p>{{.Comparison}}</p>
{{- end}}
<p><a class="pr-cta" href="{{.CalculatorHref}}">Oblicz dokładny koszt dla swojego auta</a></p>
<section>
<h2>Warianty trasy</h2>
<ul>
{{- range .Variants}}
<li>
<h3>{{.Variant.Name}}</h3>
{{- if .Variant.Via}}
<p>Przez: {{join .Variant.Via " → "}}</p>
{{- end}}
<p>{{km .Variant.Distance}} · {{.Variant.Time}} · paliwo {{money .FuelCost}}
{{- if gt .TollCost 0.0}} + opłaty drogowe {{money .TollCost}} (razem {{money .Total}}){{end}}</p>
</li>
{{- end}}
</ul>
</section>
<section>
<h2>Opłaty drogowe</h2>
{{- if .Route.HasTolls}}
<ul>
{{- range .Route.TollSections}}
<li>{{.Name}}: {{money .Cost}}</li>
{{- end}}
</ul>
<p><strong>Suma opłat drogowych (max): {{money .Route.TotalTolls}}</strong></p>
{{- else}}
<p>Na trasie {{.Route.From}} – {{.Route.To}} nie ma płatnych odcinków dla samochodów osobowych.</p>
{{- end}}
{{- if .Route.Description}}
<p>{{.Route.Description}}</p>
{{- end}}
</section>
{{- if .Related}}
<section>
<h2>Inne popularne trasy</h2>
<ul>
{{- range .Related}}
<li><a href="{{.Href}}">{{.Route.From}} → {{.Route.To}} ({{km .Route.Distance}})</a></li>
{{- end}}
</ul>
</section>
{{- end}}
</main>
{{template "footer" .}}`

const staticTemplate = `{{template "header" .}}
<main class="pr-main pr-static">
{{.Content}}
</main>
{{template "footer" .}}`

// inlineCSS styles the prerendered markup until the client bundle takes over.
const inlineCSS = `#prerendered-content{font-family:system-ui,-apple-system,"Segoe UI",Roboto,sans-serif;line-height:1.6;color:#1f2937}
.pr-header,.pr-main,.pr-footer{max-width:960px;margin:0 auto;padding:1rem}
.pr-header nav ul{display:flex;flex-wrap:wrap;gap:.25rem 1rem;list-style:none;padding:0;font-size:.875rem}
.pr-brand{font-weight:700;font-size:1.25rem;text-decoration:none;color:#111827}
.pr-hero{font-size:1.125rem}
.pr-cta{display:inline-block;padding:.5rem 1rem;border-radius:.5rem;background:#2563eb;color:#fff;text-decoration:none}
.pr-footer{font-size:.875rem;color:#6b7280;border-top:1px solid #e5e7eb}`
