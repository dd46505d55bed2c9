package service

import (
	"html/template"
	"io"
	"strings"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/version"
)

// HTMLData represents the data for the HTML report template
type HTMLData struct {
	GeneratedAt string
	Version     string
	RunID       string
	Files       []domain.FileResult
	Summary     domain.ReportSummary
	Errors      []string
	FailCount   int
	WarnCount   int
	PassCount   int
}

// writeHTML renders the report as a self-contained single-page document
func (f *OutputFormatterImpl) writeHTML(report *domain.Report, writer io.Writer) error {
	data := HTMLData{
		GeneratedAt: report.GeneratedAt,
		Version:     version.Version,
		RunID:       report.RunID,
		Files:       sortFilesWorstFirst(report.Files),
		Summary:     report.Summary,
		Errors:      report.Errors,
		FailCount:   report.Summary.SeverityCounts[domain.SeverityFail],
		WarnCount:   report.Summary.SeverityCounts[domain.SeverityWarn],
		PassCount:   report.Summary.SeverityCounts[domain.SeverityPass],
	}

	funcMap := template.FuncMap{
		"lower": strings.ToLower,
		"severityClass": func(s domain.Severity) string {
			switch s {
			case domain.SeverityFail:
				return "severity-fail"
			case domain.SeverityWarn:
				return "severity-warn"
			default:
				return "severity-pass"
			}
		},
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(htmlTemplate))
	return tmpl.Execute(writer, data)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>prosescan Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: white;
            border-radius: 10px;
            padding: 30px;
            margin-bottom: 20px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }
        .header h1 {
            color: #667eea;
            margin-bottom: 10px;
        }
        .header .subtitle {
            color: #666;
            font-size: 14px;
        }
        .panel {
            background: white;
            border-radius: 10px;
            padding: 30px;
            margin-bottom: 20px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }
        .metric-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }
        .metric-card {
            background: #f8f9fa;
            padding: 20px;
            border-radius: 8px;
            text-align: center;
        }
        .metric-value {
            font-size: 32px;
            font-weight: bold;
            color: #667eea;
        }
        .metric-label {
            color: #666;
            margin-top: 5px;
        }
        .table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
        }
        .table th, .table td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid #ddd;
            vertical-align: top;
        }
        .table th {
            background: #f8f9fa;
            font-weight: 600;
        }
        .badge {
            display: inline-block;
            padding: 2px 10px;
            border-radius: 12px;
            font-size: 12px;
            font-weight: bold;
            color: white;
        }
        .severity-fail { background: #f44336; }
        .severity-warn { background: #ff9800; }
        .severity-pass { background: #4caf50; }
        .snippet {
            font-family: 'SF Mono', Monaco, Consolas, monospace;
            font-size: 12px;
            color: #666;
            background: #f8f9fa;
            padding: 4px 8px;
            border-radius: 4px;
            display: inline-block;
            margin-top: 4px;
        }
        .file-title {
            margin: 20px 0 5px;
            font-size: 18px;
        }
        .errors li { color: #f44336; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>prosescan Report</h1>
            <div class="subtitle">Generated {{.GeneratedAt}} &middot; version {{.Version}} &middot; run {{.RunID}}</div>
        </div>

        <div class="panel">
            <h2>Summary</h2>
            <div class="metric-grid">
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.TotalFiles}}</div>
                    <div class="metric-label">Files checked</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.TotalFindings}}</div>
                    <div class="metric-label">Findings</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.FailCount}}</div>
                    <div class="metric-label">FAIL</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.WarnCount}}</div>
                    <div class="metric-label">WARN</div>
                </div>
            </div>

            {{if .Summary.TopRules}}
            <h3>Most frequent rules</h3>
            <table class="table">
                <tr><th>Rule</th><th>Findings</th></tr>
                {{range .Summary.TopRules}}
                <tr><td>{{.RuleID}}</td><td>{{.Count}}</td></tr>
                {{end}}
            </table>
            {{end}}
        </div>

        <div class="panel">
            <h2>Files</h2>
            {{range $file := .Files}}
            <div class="file-title">
                <span class="badge {{severityClass $file.Severity}}">{{$file.Severity}}</span>
                {{$file.FilePath}}
            </div>
            {{if $file.Findings}}
            <table class="table">
                <tr><th>Severity</th><th>Rule</th><th>Line</th><th>Message</th></tr>
                {{range $finding := $file.Findings}}
                <tr>
                    <td><span class="badge {{severityClass $finding.Severity}}">{{$finding.Severity}}</span></td>
                    <td>{{$finding.RuleID}}</td>
                    <td>{{$finding.Line}}</td>
                    <td>{{$finding.Message}}{{if $finding.Snippet}}<br><span class="snippet">{{$finding.Snippet}}</span>{{end}}</td>
                </tr>
                {{end}}
            </table>
            {{else}}
            <p>No findings.</p>
            {{end}}
            {{end}}
        </div>

        {{if .Errors}}
        <div class="panel errors">
            <h2>Errors</h2>
            <ul>
                {{range .Errors}}<li>{{.}}</li>{{end}}
            </ul>
        </div>
        {{end}}
    </div>
</body>
</html>
`
