package tracker

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"jira_tracker/internal/model"
)

// Label identifies this tracker to the host.
const Label = "jira"

// Note is the setup instruction shown above the configuration form.
const Note = "Please configure Jira by entering the information below."

//go:embed static
var staticFiles embed.FS

// Field describes one configuration key for the host's form builder.
type Field struct {
	Key         string `json:"key"`
	Optional    bool   `json:"optional"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

var fieldSchema = []Field{
	{Key: KeyBaseURL, Label: "Jira URL without trailing slash", Placeholder: "https://jira.example.org"},
	{Key: KeyContextPath, Optional: true, Label: `Context Path (Just "/" if empty otherwise with leading slash)`, Placeholder: "/jira"},
	{Key: KeyUsername, Label: "Username", Placeholder: "johndoe"},
	{Key: KeyPassword, Label: "Password", Placeholder: "p@assW0rd"},
	{Key: KeyProjectID, Label: "Project Key", Placeholder: "The project Key where the issue will be created"},
	{Key: KeyIssuePriority, Label: "Priority", Placeholder: "Normal"},
	{Key: KeyIssueTypeID, Optional: true, Label: "Issue Type ID (found under issues in JIRA)", Placeholder: DefaultIssueTypeID},
}

// Fields returns the configuration schema in display order.
func Fields() []Field {
	out := make([]Field, len(fieldSchema))
	copy(out, fieldSchema)
	return out
}

// Descriptor is the static metadata the host needs to offer this tracker.
type Descriptor struct {
	Label           string  `json:"label"`
	Note            string  `json:"note"`
	Fields          []Field `json:"fields"`
	CommentsAllowed bool    `json:"comments_allowed"`
}

// Describe returns the tracker metadata.
func Describe() Descriptor {
	return Descriptor{
		Label:           Label,
		Note:            Note,
		Fields:          Fields(),
		CommentsAllowed: false,
	}
}

// IconKind names one of the icons the host renders next to a problem.
type IconKind string

const (
	IconCreate   IconKind = "create"
	IconGoto     IconKind = "goto"
	IconInactive IconKind = "inactive"
)

// Icon is an image blob with its content type.
type Icon struct {
	ContentType string
	Data        []byte
}

var iconFiles = map[IconKind]string{
	IconCreate:   "static/jira_create.png",
	IconGoto:     "static/jira_goto.png",
	IconInactive: "static/jira_inactive.png",
}

// Icons loads the create, goto and inactive icons.
func Icons() (map[IconKind]Icon, error) {
	icons := make(map[IconKind]Icon, len(iconFiles))
	for kind := range iconFiles {
		icon, err := LoadIcon(kind)
		if err != nil {
			return nil, err
		}
		icons[kind] = icon
	}
	return icons, nil
}

// LoadIcon loads a single icon by kind.
func LoadIcon(kind IconKind) (Icon, error) {
	path, ok := iconFiles[kind]
	if !ok {
		return Icon{}, fmt.Errorf("unknown icon %q", kind)
	}
	data, err := staticFiles.ReadFile(path)
	if err != nil {
		return Icon{}, fmt.Errorf("failed to read icon %s: %w", kind, err)
	}
	return Icon{ContentType: "image/png", Data: data}, nil
}

var bodyTemplate = template.Must(template.ParseFS(staticFiles, "static/jira_issues_body.txt.tmpl"))

// RenderBody renders the issue description for a problem.
func RenderBody(problem model.Problem) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, problem); err != nil {
		return "", fmt.Errorf("failed to render issue body: %w", err)
	}
	return buf.String(), nil
}
