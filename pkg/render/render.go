// Package render converts structured profile/analysis/CV documents into HTML
// fragments. All functions are pure: data in, markup out, missing fields
// default to empty. The CV fragment doubles as the body of the downloadable
// Word document, so it sticks to inline styles.
package render

import (
	"html/template"
	"strings"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/match"
	"github.com/hiremind/backend/pkg/profile"
)

var profileTmpl = template.Must(template.New("profile").Parse(`<div class="profile">
  <header class="profile-header">
    <h2>{{.P.Name}}</h2>
    <p class="contact">{{.P.Contact.Email}}{{if .P.Contact.Phone}} | {{.P.Contact.Phone}}{{end}}{{if .P.Contact.LinkedIn}} | <a href="{{.P.Contact.LinkedIn}}">LinkedIn</a>{{end}}</p>
  </header>
  <section>
    <h3>{{.L.Summary}}</h3>
    <p>{{.P.Summary}}</p>
  </section>
{{if .P.Experience}}  <section>
    <h3>{{.L.Experience}}</h3>
{{range .P.Experience}}    <article class="experience">
      <h4>{{.Title}}</h4>
      <p class="company">{{.Company}}</p>
      <p class="dates">{{.Dates}}{{if .Location}} | {{.Location}}{{end}}</p>
      <ul>
{{range .Highlights}}        <li>{{.}}</li>
{{end}}      </ul>
    </article>
{{end}}  </section>
{{end}}  <section>
    <h3>{{.L.TechnicalSkills}}</h3>
    <ul class="skills">
{{range .P.Skills.Technical}}      <li>{{.}}</li>
{{end}}    </ul>
  </section>
{{if .P.Education}}  <section>
    <h3>{{.L.Education}}</h3>
{{range .P.Education}}    <p><strong>{{.Title}}</strong> — {{.Institution}} | {{.Dates}}</p>
{{end}}  </section>
{{end}}</div>`))

// Profile renders the structured work-history view. A nil profile renders the
// "profile not found" state (valid for new users and unimported locales).
func Profile(p *profile.Profile, loc locale.Locale) string {
	l := labelsFor(loc)
	if p == nil {
		return `<p class="profile-empty">` + template.HTMLEscapeString(l.ProfileNotFound) + `</p>`
	}
	var b strings.Builder
	if err := profileTmpl.Execute(&b, struct {
		P *profile.Profile
		L labels
	}{p, l}); err != nil {
		return ""
	}
	return b.String()
}

var cvTmpl = template.Must(template.New("cv").Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.4; color: #333; font-size: 10.5pt;">
  <div style="text-align: center; margin-bottom: 12px; border-bottom: 1px solid #333;">
    <div style="font-size: 14pt; font-weight: bold; text-transform: uppercase;">{{.CV.Name}}</div>
    <div style="font-size: 9.8pt; margin: 4px 0;">{{.CV.Contact.Email}}{{if .CV.Contact.Phone}} | {{.CV.Contact.Phone}}{{end}}{{if .CV.Contact.LinkedIn}} | {{.CV.Contact.LinkedIn}}{{end}}</div>
  </div>
  <div style="margin-bottom: 10px;">
    <div style="font-size: 11.5pt; font-weight: bold; border-bottom: 1.5px solid #ddd;">{{.L.Summary}}</div>
    <div style="text-align: justify;">{{.CV.Summary}}</div>
  </div>
{{if .CV.Experience}}  <div style="margin-bottom: 10px;">
    <div style="font-size: 11.5pt; font-weight: bold; border-bottom: 1.5px solid #ddd;">{{.L.Experience}}</div>
{{range .CV.Experience}}    <div style="margin-bottom: 5px;">
      <div><strong>{{.Company}} - {{.Title}}</strong> <span style="font-style: italic; font-size: 9.8pt; margin-left: 10px;">{{.Dates}}</span></div>
      <ul style="margin: 4px 0 4px 25px; padding: 0;">
{{range .Highlights}}        <li style="margin: 2px 0; font-size: 10.2pt;">{{.}}</li>
{{end}}      </ul>
    </div>
{{end}}  </div>
{{end}}  <div style="margin-bottom: 10px;">
    <div style="font-size: 11.5pt; font-weight: bold; border-bottom: 1.5px solid #ddd;">{{.L.TechnicalSkills}} &amp; {{.L.Certifications}}</div>
    <table style="width:100%; border-collapse: collapse;">
      <tr>
        <td style="width:50%; vertical-align:top; padding-right:10px;">
          <ul style="margin: 4px 0 0 20px; padding: 0;">
{{range .CV.Skills.Technical}}            <li style="font-size: 10.2pt;">{{.}}</li>
{{end}}          </ul>
        </td>
        <td style="width:50%; vertical-align:top; padding-left:10px;">
          <ul style="margin: 4px 0 0 20px; padding: 0;">
{{range .Certs}}            <li style="font-size: 10.2pt;">{{.}}</li>
{{end}}          </ul>
        </td>
      </tr>
    </table>
  </div>
{{if .CV.Education}}  <div style="margin-bottom: 10px;">
    <div style="font-size: 11.5pt; font-weight: bold; border-bottom: 1.5px solid #ddd;">{{.L.Education}}</div>
{{range .CV.Education}}    <div style="margin-bottom: 5px;"><strong>{{.Title}}</strong> <span style="margin-left: 8px;">{{.Institution}} | {{.Dates}}</span></div>
{{end}}  </div>
{{end}}</div>`))

const maxCVCerts = 8

// CV renders the tailored résumé. The same markup is used verbatim as the
// body of the Word download.
func CV(cv profile.Profile, loc locale.Locale) string {
	certs := cv.Skills.Certifications
	if len(certs) > maxCVCerts {
		certs = certs[:maxCVCerts]
	}
	var b strings.Builder
	if err := cvTmpl.Execute(&b, struct {
		CV    profile.Profile
		L     labels
		Certs []string
	}{cv, labelsFor(loc), certs}); err != nil {
		return ""
	}
	return b.String()
}

var recsTmpl = template.Must(template.New("recs").Parse(`<div class="recommendations">
  <section>
    <h4>{{.L.KeySkills}}</h4>
    <ul>{{range .R.KeySkills}}<li>{{.}}</li>{{end}}</ul>
  </section>
  <section>
    <h4>{{.L.RecommendedCerts}}</h4>
    <ul>{{range .R.Certifications}}<li>{{.}}</li>{{end}}</ul>
  </section>
{{if .R.Courses}}  <section>
    <h4>{{.L.RecommendedCourses}}</h4>
    <ul>
{{range .R.Courses}}      <li><a href="{{.URL}}">{{.Name}}</a> — {{.Provider}}</li>
{{end}}    </ul>
  </section>
{{end}}{{if .R.EstimatedTime}}  <p class="estimated-time"><strong>{{.L.EstimatedTime}}:</strong> {{.R.EstimatedTime}}</p>
{{end}}{{if .R.FreeResources}}  <section>
    <h4>{{.L.FreeResources}}</h4>
    <ul>
{{range .R.FreeResources}}      <li><a href="{{.URL}}">{{.Name}}</a> ({{.Type}})</li>
{{end}}    </ul>
  </section>
{{end}}{{if .R.SuggestedVacancies}}  <section>
    <h4>{{.L.SuggestedVacancies}}</h4>
{{range .R.SuggestedVacancies}}    <article class="vacancy">
      <strong>{{.Role}}</strong>
      <p>{{.Description}}</p>
      <p class="portals">{{range .Portals}}<span>{{.}}</span> {{end}}</p>
    </article>
{{end}}  </section>
{{end}}</div>`))

// Recommendations renders the improvement plan shown on the
// below-threshold branch.
func Recommendations(r *match.Recommendations, loc locale.Locale) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	if err := recsTmpl.Execute(&b, struct {
		R *match.Recommendations
		L labels
	}{r, labelsFor(loc)}); err != nil {
		return ""
	}
	return b.String()
}

var analysisTmpl = template.Must(template.New("analysis").Parse(`<div class="analysis-details">
  <section>
    <h4>{{.L.Strengths}}</h4>
    <ul>
{{range .A.Strengths}}      <li>{{.}}</li>
{{end}}    </ul>
  </section>
  <section>
    <h4>{{.L.InterviewTips}}</h4>
    <p>{{.A.InterviewTips}}</p>
  </section>
</div>`))

// AnalysisDetails renders strengths and interview tips for the compatible
// branch.
func AnalysisDetails(a match.Analysis, loc locale.Locale) string {
	var b strings.Builder
	if err := analysisTmpl.Execute(&b, struct {
		A match.Analysis
		L labels
	}{a, labelsFor(loc)}); err != nil {
		return ""
	}
	return b.String()
}

var resultTmpl = template.Must(template.New("result").Parse(`<div class="verdict {{if .A.Compatible}}verdict-compatible{{else}}verdict-gap{{end}}">
  <h3>{{.Heading}}</h3>
  <p class="score"><strong>{{.L.Compatibility}}: {{printf "%.0f" .A.Percentage}}%</strong></p>
{{.Details}}</div>`))

// Result renders the full verdict view for an entry: heading, score, then
// either the success details or the improvement plan. Replayed entries go
// through the exact same path, so their rendering is byte-identical to the
// one produced at creation time.
func Result(e match.Entry) string {
	l := labelsFor(e.Locale)
	heading := l.AreasOfOpportunity
	var details string
	if e.Analysis.Compatible {
		heading = l.Congratulations
		details = AnalysisDetails(e.Analysis, e.Locale)
	} else {
		details = Recommendations(e.Recommendations, e.Locale)
	}
	var b strings.Builder
	if err := resultTmpl.Execute(&b, struct {
		A       match.Analysis
		L       labels
		Heading string
		Details template.HTML
	}{e.Analysis, l, heading, template.HTML(details)}); err != nil {
		return ""
	}
	return b.String()
}
